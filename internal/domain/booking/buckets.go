package booking

import "strconv"

// Buckets groups a day's times into the three tabs the client renders.
type Buckets struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Evening   []string `json:"evening"`
}

// BucketFor places an "HH:MM" time by hour: [7,11] morning, [12,17]
// afternoon, [18,21] evening. Hours outside [7,21] belong to no bucket
// and the second return is false.
func BucketFor(hm string) (string, bool) {
	if len(hm) != 5 || hm[2] != ':' {
		return "", false
	}

	hour, err := strconv.Atoi(hm[:2])
	if err != nil {
		return "", false
	}

	switch {
	case hour >= 7 && hour <= 11:
		return "morning", true
	case hour >= 12 && hour <= 17:
		return "afternoon", true
	case hour >= 18 && hour <= 21:
		return "evening", true
	}

	return "", false
}

// BucketTimes drops out-of-range times silently.
func BucketTimes(times []string) Buckets {
	var b Buckets

	for _, hm := range times {
		bucket, ok := BucketFor(hm)
		if !ok {
			continue
		}

		switch bucket {
		case "morning":
			b.Morning = append(b.Morning, hm)
		case "afternoon":
			b.Afternoon = append(b.Afternoon, hm)
		case "evening":
			b.Evening = append(b.Evening, hm)
		}
	}

	return b
}
