package constants

const (
	// DailyMissionCount is the number of missions presented each day.
	DailyMissionCount = 3

	// ReservedMissionID is the welcome mission. It is never part of the
	// daily rotation.
	ReservedMissionID uint64 = 1
)
