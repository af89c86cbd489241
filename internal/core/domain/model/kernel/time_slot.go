package kernel

// TimeSlot is the internal delivery time-slot code shared by every carrier mapping.
// The code is HHHH: start hour followed by end hour. Codes outside the known set are kept
// as-is; carrier mappings degrade them to "no preference".
type TimeSlot string

const (
	TimeSlotNone    TimeSlot = ""
	TimeSlotAnytime TimeSlot = "0000"
	TimeSlotMorning TimeSlot = "0812" // 午前中
	TimeSlot1214    TimeSlot = "1214"
	TimeSlot1416    TimeSlot = "1416"
	TimeSlot1618    TimeSlot = "1618"
	TimeSlot1820    TimeSlot = "1820"
	TimeSlot1921    TimeSlot = "1921"
)

// IsRequested reports whether the customer asked for a specific slot.
func (t TimeSlot) IsRequested() bool {
	return t != TimeSlotNone && t != TimeSlotAnytime
}

func (t TimeSlot) String() string {
	return string(t)
}
