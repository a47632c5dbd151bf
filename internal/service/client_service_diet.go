package service

import (
	"context"
	"encoding/base64"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-health-diary/internal/adapter"
	"github.com/MKhiriev/go-health-diary/models"
)

const (
	// summaryWindowDays is the dashboard's aggregate window, today included.
	summaryWindowDays = 7

	// recentEntriesLimit is the page size of the recent entries list.
	recentEntriesLimit = 20

	// entrySourceVision tags entries that came from photo recognition.
	entrySourceVision = "vision"
)

// allowedImageMIME lists the media types the recognizer accepts.
var allowedImageMIME = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/heic": {},
}

// CapturedImage is a food photo taken on the device, ready for recognition.
type CapturedImage struct {
	Data       []byte
	MIME       string
	CapturedAt time.Time
}

// DashboardState is the diet dashboard's read model. Values handed out by
// [DietService.State] are copies and stay valid after subsequent refreshes.
type DashboardState struct {
	IsLoading bool
	Err       error

	DeviceID string

	// UserID is the backend account id when the last profile fetch
	// succeeded, empty otherwise.
	UserID string

	// TodayTotals is derived from Last7Days: the totals of the day whose
	// date equals today, zero totals when today has no entries yet.
	TodayTotals models.NutritionTotals

	RecentEntries []models.DietEntry
	Last7Days     []models.DietDailySummary

	// Plan is nil whenever the last plan fetch failed or found no plan.
	Plan *models.NutritionPlan
}

type dietService struct {
	adapter  adapter.ServerAdapter
	deviceID string
	locale   string
	now      func() time.Time

	mu       sync.RWMutex
	inFlight bool
	state    DashboardState
}

// NewDietService creates the dashboard orchestrator for one device. locale
// is forwarded to the recognizer and may be empty.
func NewDietService(serverAdapter adapter.ServerAdapter, deviceID, locale string) DietService {
	return &dietService{
		adapter:  serverAdapter,
		deviceID: deviceID,
		locale:   locale,
		now:      time.Now,
		state:    DashboardState{DeviceID: deviceID},
	}
}

func (s *dietService) State() DashboardState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// slices and the plan pointer are replaced wholesale on refresh and
	// never mutated in place, so a shallow copy is a stable snapshot
	return s.state
}

func (s *dietService) Refresh(ctx context.Context) {
	if s.deviceID == "" {
		return
	}

	s.mu.Lock()
	if s.inFlight {
		// a refresh is already running, the newcomer gives way
		s.mu.Unlock()
		return
	}
	s.inFlight = true
	s.state.IsLoading = true
	s.state.Err = nil
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.state.IsLoading = false
		s.mu.Unlock()
	}()

	now := s.now()
	today := models.FormatDate(now)
	start := models.FormatDate(now.AddDate(0, 0, -(summaryWindowDays - 1)))

	var (
		wg      sync.WaitGroup
		summary models.DietSummaryResponse
		entries models.DietEntriesResponse
		sumErr  error
		entErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		summary, sumErr = s.adapter.GetDietSummary(ctx, s.deviceID, start, today)
	}()
	go func() {
		defer wg.Done()
		entries, entErr = s.adapter.GetDietEntries(ctx, s.deviceID, start, today, recentEntriesLimit, 0)
	}()
	wg.Wait()

	if sumErr != nil || entErr != nil {
		// ошибка основной выборки показывается пользователю, но профиль и
		// план всё равно запрашиваются ниже
		err := sumErr
		if err == nil {
			err = entErr
		}
		s.mu.Lock()
		s.state.Err = mapAdapterError(err)
		s.mu.Unlock()
	} else {
		var todayTotals models.NutritionTotals
		for _, day := range summary.Days {
			if day.Date == today {
				todayTotals = day.Totals
				break
			}
		}

		s.mu.Lock()
		s.state.Last7Days = summary.Days
		s.state.RecentEntries = entries.Entries
		s.state.TodayTotals = todayTotals
		s.mu.Unlock()
	}

	// plan reads are keyed by the account id when we know it,
	// by the device id otherwise
	ownerID := s.deviceID
	profile, err := s.adapter.GetProfile(ctx)
	s.mu.Lock()
	if err != nil {
		s.state.UserID = ""
	} else {
		ownerID = profile.ID
		s.state.UserID = profile.ID
	}
	s.mu.Unlock()

	plan, err := s.adapter.GetNutritionPlan(ctx, ownerID, today)
	s.mu.Lock()
	if err != nil {
		s.state.Plan = nil
	} else {
		s.state.Plan = &plan
	}
	s.mu.Unlock()
}

func (s *dietService) Recognize(ctx context.Context, image CapturedImage) (models.DietRecognizeResponse, error) {
	if len(image.Data) == 0 {
		return models.DietRecognizeResponse{}, ErrEncodingFailed
	}
	if _, ok := allowedImageMIME[image.MIME]; !ok {
		return models.DietRecognizeResponse{}, ErrEncodingFailed
	}

	req := models.DietRecognizeRequest{
		DeviceID:    s.deviceID,
		CapturedAt:  models.FormatTimestamp(image.CapturedAt),
		ImageMIME:   image.MIME,
		ImageBase64: base64.StdEncoding.EncodeToString(image.Data),
	}
	if s.locale != "" {
		locale := s.locale
		req.Locale = &locale
	}

	resp, err := s.adapter.RecognizeFood(ctx, req)
	if err != nil {
		return models.DietRecognizeResponse{}, mapAdapterError(err)
	}

	return resp, nil
}

func (s *dietService) SaveEntry(ctx context.Context, eatenAt time.Time, mealType models.MealType, items []models.FoodItem, notes string, planID *string) (models.DietCreateEntryResponse, error) {
	source := entrySourceVision
	req := models.DietCreateEntryRequest{
		DeviceID: s.deviceID,
		EatenAt:  models.FormatTimestamp(eatenAt),
		MealType: mealType,
		Items:    items,
		Source:   &source,
		PlanID:   planID,
	}
	// пустая после trim строка остаётся пустой, а не отсутствующей
	trimmed := strings.TrimSpace(notes)
	req.Notes = &trimmed

	resp, err := s.adapter.CreateDietEntry(ctx, req)
	if err != nil {
		return models.DietCreateEntryResponse{}, mapAdapterError(err)
	}

	return resp, nil
}
