package domain

// ListContext - snapshot of the list that owns the schedule being previewed
type ListContext struct {
	ID        string  `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	Timezone  *string `json:"timezone" db:"timezone"`
	StartDate *string `json:"start_date" db:"start_date"` // YYYY-MM-DD
	EndDate   *string `json:"end_date" db:"end_date"`     // YYYY-MM-DD
}

// Place categories in the order they are clustered within a slot.
const (
	CategoryFood     = "Food"
	CategoryCoffee   = "Coffee"
	CategorySights   = "Sights"
	CategoryActivity = "Activity"
	CategoryShop     = "Shop"
	CategoryDrinks   = "Drinks"
)

// CategoryPriority is the fixed clustering order of place categories.
var CategoryPriority = []string{
	CategoryFood,
	CategoryCoffee,
	CategorySights,
	CategoryActivity,
	CategoryShop,
	CategoryDrinks,
}

// Slot is one of the day partitions a scheduled item falls into.
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
	SlotEvening   Slot = "evening"
	SlotUnslotted Slot = "unslotted"
)

// Start times that place an item into a slot. Anything else is unslotted.
const (
	MorningStartTime   = "09:00:00"
	AfternoonStartTime = "14:00:00"
	EveningStartTime   = "19:00:00"
)

// ScheduleRow - one scheduled, non-completed list item for the target date
type ScheduleRow struct {
	ItemID             string   `json:"item_id" db:"item_id"`
	PlaceID            string   `json:"place_id" db:"place_id"`
	PlaceName          *string  `json:"place_name" db:"place_name"`
	Category           *string  `json:"category" db:"category"`
	ScheduledDate      string   `json:"scheduled_date" db:"scheduled_date"`             // YYYY-MM-DD
	ScheduledStartTime *string  `json:"scheduled_start_time" db:"scheduled_start_time"` // HH:MM:SS
	ScheduledOrder     *float64 `json:"scheduled_order" db:"scheduled_order"`
	CreatedAt          string   `json:"created_at" db:"created_at"` // ISO-8601, fixed width UTC
	Lat                *float64 `json:"lat" db:"lat"`
	Lng                *float64 `json:"lng" db:"lng"`
}

// SequenceItem - schedule row placed into the day plan
type SequenceItem struct {
	ScheduleRow
	Slot      Slot `json:"slot"`
	SlotRank  int  `json:"slot_rank"`
	Routeable bool `json:"routeable"`
}

// UnroutableReasonMissingCoordinates marks items without usable coordinates.
const UnroutableReasonMissingCoordinates = "missing_coordinates"

// UnroutableItem - sequence item that cannot take part in a leg
type UnroutableItem struct {
	ItemID    string  `json:"item_id"`
	PlaceID   string  `json:"place_id"`
	PlaceName *string `json:"place_name"`
	Reason    string  `json:"reason"`
}

// LegDraft - pair of consecutive routeable stops awaiting provider metrics
type LegDraft struct {
	Index       int    `json:"index"`
	FromItemID  string `json:"from_item_id"`
	ToItemID    string `json:"to_item_id"`
	FromPlaceID string `json:"from_place_id"`
	ToPlaceID   string `json:"to_place_id"`
}

// TravelTimeBadges - display labels for a leg duration
type TravelTimeBadges struct {
	Minutes int    `json:"minutes"`
	Short   string `json:"short"`
	Long    string `json:"long"`
}

// ComputedLeg - leg draft with validated provider metrics
type ComputedLeg struct {
	LegDraft
	DistanceM       int64  `json:"distance_m"`
	DurationS       int64  `json:"duration_s"`
	TravelMinutes   int    `json:"travel_minutes"`
	TravelTimeShort string `json:"travel_time_short"`
	TravelTimeLong  string `json:"travel_time_long"`
}

// Summary - aggregate counters of a preview
type Summary struct {
	TotalItems      int    `json:"total_items"`
	RouteableItems  int    `json:"routeable_items"`
	UnroutableItems int    `json:"unroutable_items"`
	LegCount        int    `json:"leg_count"`
	TotalDistanceM  *int64 `json:"total_distance_m"`
	TotalDurationS  *int64 `json:"total_duration_s"`
}
