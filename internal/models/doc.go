// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

/*
Package models defines the data structures shared by every Cinequiz component.

Key Components:

  - Movie: one catalog record as it appears in movies.json
  - Answers: one completed quiz, rebuilt for every recommendation request
  - Recommendation: a ranked movie with its final score
  - Mood, Duration, Focus, Company: the closed set of quiz choices

Enumerations are total. Parsing never fails: an empty value yields the Unset
member and any value outside the recognised set yields the Unmapped member,
so a misspelled form value can never be mistaken for a real choice.

Models carry no behaviour beyond parsing and formatting. Scoring lives in
package recommend and rendering in package present.
*/
package models
