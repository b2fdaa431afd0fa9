package usecase

import (
	"sort"
	"strings"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/pkg/utils"
)

// SequenceResult - day plan derived from schedule rows
type SequenceResult struct {
	Sequence          []domain.SequenceItem
	RouteableSequence []domain.SequenceItem
	UnroutableItems   []domain.UnroutableItem
	Legs              []domain.LegDraft
}

var slotByStartTime = map[string]domain.Slot{
	domain.MorningStartTime:   domain.SlotMorning,
	domain.AfternoonStartTime: domain.SlotAfternoon,
	domain.EveningStartTime:   domain.SlotEvening,
}

var slotRanks = map[domain.Slot]int{
	domain.SlotMorning:   0,
	domain.SlotAfternoon: 1,
	domain.SlotEvening:   2,
	domain.SlotUnslotted: 3,
}

var categoryRanks = func() map[string]int {
	ranks := make(map[string]int, len(domain.CategoryPriority))
	for i, c := range domain.CategoryPriority {
		ranks[c] = i
	}
	return ranks
}()

// BuildSequence orders schedule rows into the plan for the day and drafts the
// legs between consecutive routeable stops. The result depends only on the
// multiset of rows, never on their input order.
func BuildSequence(rows []domain.ScheduleRow) SequenceResult {
	sequence := make([]domain.SequenceItem, 0, len(rows))
	for _, row := range rows {
		sequence = append(sequence, toSequenceItem(row))
	}

	sort.Slice(sequence, func(i, j int) bool {
		return compareSequenceItems(sequence[i], sequence[j]) < 0
	})

	routeable := make([]domain.SequenceItem, 0, len(sequence))
	unroutable := make([]domain.UnroutableItem, 0)
	for _, item := range sequence {
		if item.Routeable {
			routeable = append(routeable, item)
			continue
		}
		unroutable = append(unroutable, domain.UnroutableItem{
			ItemID:    item.ItemID,
			PlaceID:   item.PlaceID,
			PlaceName: item.PlaceName,
			Reason:    domain.UnroutableReasonMissingCoordinates,
		})
	}

	return SequenceResult{
		Sequence:          sequence,
		RouteableSequence: routeable,
		UnroutableItems:   unroutable,
		Legs:              BuildLegDrafts(routeable),
	}
}

// BuildLegDrafts connects each routeable item to the next one.
func BuildLegDrafts(routeable []domain.SequenceItem) []domain.LegDraft {
	if len(routeable) < 2 {
		return []domain.LegDraft{}
	}

	legs := make([]domain.LegDraft, 0, len(routeable)-1)
	for i := 0; i < len(routeable)-1; i++ {
		from, to := routeable[i], routeable[i+1]
		legs = append(legs, domain.LegDraft{
			Index:       i,
			FromItemID:  from.ItemID,
			ToItemID:    to.ItemID,
			FromPlaceID: from.PlaceID,
			ToPlaceID:   to.PlaceID,
		})
	}
	return legs
}

func toSequenceItem(row domain.ScheduleRow) domain.SequenceItem {
	slot := SlotForStartTime(row.ScheduledStartTime)
	return domain.SequenceItem{
		ScheduleRow: row,
		Slot:        slot,
		SlotRank:    slotRanks[slot],
		Routeable:   utils.HasCoordinates(row.Lat, row.Lng),
	}
}

// SlotForStartTime maps a start time to its slot. Only the exact sentinel
// times are slotted; "HH:MM" is read as "HH:MM:00".
func SlotForStartTime(startTime *string) domain.Slot {
	if startTime == nil {
		return domain.SlotUnslotted
	}
	if slot, ok := slotByStartTime[canonicalTimeOfDay(*startTime)]; ok {
		return slot
	}
	return domain.SlotUnslotted
}

func canonicalTimeOfDay(value string) string {
	value = strings.TrimSpace(value)
	if len(value) == len("15:04") {
		return value + ":00"
	}
	return value
}

func categoryRank(category *string) int {
	if category != nil {
		if rank, ok := categoryRanks[*category]; ok {
			return rank
		}
	}
	return len(domain.CategoryPriority)
}

func manualOrder(order *float64) float64 {
	if order == nil || !utils.IsFinite(*order) {
		return 0
	}
	return *order
}

// compareSequenceItems: slot, category, manual order, creation time, item id.
func compareSequenceItems(a, b domain.SequenceItem) int {
	if a.SlotRank != b.SlotRank {
		return a.SlotRank - b.SlotRank
	}

	if ca, cb := categoryRank(a.Category), categoryRank(b.Category); ca != cb {
		return ca - cb
	}

	if oa, ob := manualOrder(a.ScheduledOrder), manualOrder(b.ScheduledOrder); oa != ob {
		if oa < ob {
			return -1
		}
		return 1
	}

	if c := strings.Compare(a.CreatedAt, b.CreatedAt); c != 0 {
		return c
	}

	return strings.Compare(a.ItemID, b.ItemID)
}
