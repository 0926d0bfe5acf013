// Package reasons buckets free-text match-justification strings into the
// fixed categories the detail view groups by.
package reasons

import "strings"

// SentimentMarker tags a reason as derived from company-sentiment analysis.
// Detection is case-sensitive and matches the marker anywhere in the string.
const SentimentMarker = "[SENTIMENT]"

// Buckets holds the classified reasons in display order. Reason order within
// each bucket follows the source list.
type Buckets struct {
	Skill     []string
	Company   []string
	Sentiment []string
	Other     []string
}

// Classify partitions a talent's match reasons. Precedence per reason is
// sentiment > skill > company > other. The company bucket is list-scoped:
// any sentiment-tagged reason anywhere in the list empties it entirely.
func Classify(list []string) Buckets {
	buckets := Buckets{}
	suppressCompany := HasSentiment(list)

	for _, reason := range list {
		if strings.Contains(reason, SentimentMarker) {
			buckets.Sentiment = append(buckets.Sentiment, stripMarker(reason))
			continue
		}

		lower := strings.ToLower(reason)
		classified := false

		if strings.Contains(lower, "skill") || strings.Contains(lower, "experience") {
			buckets.Skill = append(buckets.Skill, reason)
			classified = true
		}

		if strings.Contains(lower, "company") || strings.Contains(lower, "worked") {
			if !suppressCompany {
				buckets.Company = append(buckets.Company, reason)
			}
			classified = true
		}

		if !classified {
			buckets.Other = append(buckets.Other, reason)
		}
	}

	return buckets
}

// HasSentiment reports whether any reason in the list carries the sentiment
// marker.
func HasSentiment(list []string) bool {
	for _, reason := range list {
		if strings.Contains(reason, SentimentMarker) {
			return true
		}
	}
	return false
}

func stripMarker(reason string) string {
	return strings.Replace(reason, SentimentMarker+" ", "", 1)
}
