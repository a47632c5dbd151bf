// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SleepStage is the enumerated label attached to a [SleepSession].
// The values mirror the stages reported by the phone's health store.
type SleepStage string

const (
	SleepStageInBed SleepStage = "inBed"
	SleepStageAwake SleepStage = "awake"
	SleepStageCore  SleepStage = "core"
	SleepStageDeep  SleepStage = "deep"
	SleepStageREM   SleepStage = "rem"
)

// DailySteps is the total step count observed for a single calendar day.
type DailySteps struct {
	// Date is the calendar day in "2006-01-02" form.
	Date string `json:"date"`

	// Count is the number of steps taken on Date. Never negative.
	Count int64 `json:"count"`
}

// HeartRateSample is a single point-in-time heart rate measurement.
type HeartRateSample struct {
	// Timestamp is the moment of measurement in RFC3339 form.
	Timestamp string `json:"timestamp"`

	// BPM is the measured heart rate in beats per minute. Always positive.
	BPM float64 `json:"bpm"`
}

// RestingHeartRate is the derived resting heart rate for a calendar day.
type RestingHeartRate struct {
	Date string  `json:"date"`
	BPM  float64 `json:"bpm"`
}

// SpO2Reading is a single blood oxygen saturation measurement.
type SpO2Reading struct {
	Timestamp string `json:"timestamp"`

	// Percentage is the saturation value in the 0–100 range.
	Percentage float64 `json:"percentage"`
}

// SleepSession is one contiguous stretch of a sleep stage.
// StartTime is always strictly before EndTime.
type SleepSession struct {
	StartTime string     `json:"start_time"`
	EndTime   string     `json:"end_time"`
	Stage     SleepStage `json:"stage"`
}

// WorkoutRecord describes a completed workout session.
//
// The optional measurements are pointers so that a missing value serializes
// as absent on the wire rather than as a zero sentinel. DurationSeconds is
// carried separately from the start/end pair; the two are expected to agree
// but the mismatch is not enforced anywhere.
type WorkoutRecord struct {
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	ActivityType    string  `json:"activity_type"`
	DurationSeconds float64 `json:"duration_seconds"`

	TotalEnergyKcal     *float64 `json:"total_energy_kcal,omitempty"`
	TotalDistanceMeters *float64 `json:"total_distance_meters,omitempty"`
	AvgHeartRate        *float64 `json:"avg_heart_rate,omitempty"`
	MaxHeartRate        *float64 `json:"max_heart_rate,omitempty"`
}
