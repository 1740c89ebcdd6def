// Package catalog holds the fixed list of service call types.
package catalog

import "strings"

// entries is the canonical catalog, in presentation order. It is fixed for
// the lifetime of the process.
var entries = []string{
	"NONE",
	"Access",
	"Alarm",
	"Arrest",
	"Assist Police/EMS",
	"By Law",
	"Camera Audit",
	"Camera Footage Review",
	"Camera Malfunction",
	"Code Red",
	"Daily Lock/Unlock",
	"Elevator Kirkwood",
	"Emergency Card Swipe Testing",
	"Escort Delivery",
	"Evidence/Contraband",
	"Facility Maintenance",
	"Fall No Injuries",
	"Fall Unknown Injuries",
	"Fall With Injuries",
	"Guard Duties - Other",
	"Information",
	"Lock/Unlock Door",
	"Monitor Camera",
	"Motor Vehicle Accident",
	"Off-Site Checks",
	"Off-Site Checks Cancelled",
	"Off-Site Service Calls",
	"One-to-One",
	"Other Service Calls",
	"Parking",
	"Patrol Duties",
	"POI",
	"Search Room",
	"Side Room Entry",
	"Staff Falls",
	"Visitor - Security Presence/Assistance",
	"Weekly Audits",
}

// Entries returns the full catalog in order. The caller must not mutate the
// returned slice.
func Entries() []string {
	return entries
}

// Filter returns the catalog entries containing the query as a
// case-insensitive substring, preserving catalog order. The query is trimmed
// of surrounding whitespace; an empty query matches everything.
func Filter(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}
	var matches []string
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry), query) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// Contains reports whether s is exactly a catalog entry. Unlike Filter this
// is case-sensitive: it is the authoritative check used at submit time.
func Contains(s string) bool {
	for _, entry := range entries {
		if s == entry {
			return true
		}
	}
	return false
}
