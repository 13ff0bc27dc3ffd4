// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package models

import "strings"

// Mood is the answer to "how do you feel tonight".
type Mood int

const (
	MoodUnset Mood = iota
	MoodHappy
	MoodThoughtful
	MoodSad
	MoodExcited
	MoodCalm
	MoodThrilling
	MoodUnmapped
)

var moodNames = [...]string{
	MoodUnset:      "",
	MoodHappy:      "happy",
	MoodThoughtful: "thoughtful",
	MoodSad:        "sad",
	MoodExcited:    "excited",
	MoodCalm:       "calm",
	MoodThrilling:  "thrilling",
	MoodUnmapped:   "unmapped",
}

// ParseMood maps a form value to a Mood. It never fails.
func ParseMood(s string) Mood {
	return Mood(parseEnum(s, moodNames[:], int(MoodUnmapped)))
}

func (m Mood) String() string {
	if m < MoodUnset || m > MoodUnmapped {
		return moodNames[MoodUnmapped]
	}
	return moodNames[m]
}

// MoodValues returns the recognised moods in form order.
func MoodValues() []Mood {
	return []Mood{MoodHappy, MoodThoughtful, MoodSad, MoodExcited, MoodCalm, MoodThrilling}
}

// Duration is the preferred movie length bucket.
type Duration int

const (
	DurationUnset Duration = iota
	DurationShort
	DurationMedium
	DurationLong
	DurationVeryLong
	DurationAny
	DurationUnmapped
)

var durationNames = [...]string{
	DurationUnset:    "",
	DurationShort:    "short",
	DurationMedium:   "medium",
	DurationLong:     "long",
	DurationVeryLong: "very_long",
	DurationAny:      "any",
	DurationUnmapped: "unmapped",
}

// ParseDuration maps a form value to a Duration. It never fails.
func ParseDuration(s string) Duration {
	return Duration(parseEnum(s, durationNames[:], int(DurationUnmapped)))
}

func (d Duration) String() string {
	if d < DurationUnset || d > DurationUnmapped {
		return durationNames[DurationUnmapped]
	}
	return durationNames[d]
}

// DurationValues returns the recognised durations in form order.
func DurationValues() []Duration {
	return []Duration{DurationShort, DurationMedium, DurationLong, DurationVeryLong, DurationAny}
}

// Focus answers both the "what matters in a story" and the "how complex"
// questions; the two share one vocabulary.
type Focus int

const (
	FocusUnset Focus = iota
	FocusCharacter
	FocusAction
	FocusBalanced
	FocusMindBending
	FocusEmotional
	FocusLight
	FocusUnmapped
)

var focusNames = [...]string{
	FocusUnset:       "",
	FocusCharacter:   "character",
	FocusAction:      "action",
	FocusBalanced:    "balanced",
	FocusMindBending: "mind_bending",
	FocusEmotional:   "emotional",
	FocusLight:       "light",
	FocusUnmapped:    "unmapped",
}

// ParseFocus maps a form value to a Focus. It never fails.
func ParseFocus(s string) Focus {
	return Focus(parseEnum(s, focusNames[:], int(FocusUnmapped)))
}

func (f Focus) String() string {
	if f < FocusUnset || f > FocusUnmapped {
		return focusNames[FocusUnmapped]
	}
	return focusNames[f]
}

// FocusValues returns the recognised focus values in form order.
func FocusValues() []Focus {
	return []Focus{FocusCharacter, FocusAction, FocusBalanced, FocusMindBending, FocusEmotional, FocusLight}
}

// Company is who the user is watching with. Only the audience-sensitive
// values are distinguished.
type Company int

const (
	CompanyUnset Company = iota
	CompanyFamily
	CompanyChildren
	CompanyOther
)

var companyNames = [...]string{
	CompanyUnset:    "",
	CompanyFamily:   "family",
	CompanyChildren: "children",
	CompanyOther:    "other",
}

// ParseCompany maps a form value to a Company. Any non-empty value outside
// family and children is CompanyOther.
func ParseCompany(s string) Company {
	return Company(parseEnum(s, companyNames[:CompanyOther], int(CompanyOther)))
}

func (c Company) String() string {
	if c < CompanyUnset || c > CompanyOther {
		return companyNames[CompanyOther]
	}
	return companyNames[c]
}

// IsYoungAudience reports whether the audience calls for family-safe picks.
func (c Company) IsYoungAudience() bool {
	return c == CompanyFamily || c == CompanyChildren
}

// parseEnum returns the index of s in names, 0 for an empty value, or
// unmapped when nothing matches. Index 0 is always the unset member.
func parseEnum(s string, names []string, unmapped int) int {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	for i := 1; i < len(names); i++ {
		if i == unmapped {
			continue
		}
		if names[i] == s {
			return i
		}
	}
	return unmapped
}
