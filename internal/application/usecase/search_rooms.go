package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/goddivor/room-reservation-sub001/internal/domain/room"
	"github.com/goddivor/room-reservation-sub001/internal/domain/table"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type SearchRoomsParams struct {
	Criteria room.FilterCriteria `json:"criteria"`
	Sort     table.SortState     `json:"sort"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

// Validate normalizes paging inputs in place. It never clamps the page
// against the result set; an out-of-range page legitimately yields an empty
// page (see table.ClampPage for callers that track a current page).
func (p *SearchRoomsParams) Validate() error {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return nil
}

type SearchRoomsResult struct {
	Rooms          []room.Room   `json:"rooms"`
	TotalHits      int           `json:"total_hits"`
	Page           int           `json:"page"`
	PageSize       int           `json:"page_size"`
	TotalPages     int           `json:"total_pages"`
	ProcessingTime time.Duration `json:"processing_time"`
}

func (r *SearchRoomsResult) HasNextPage() bool {
	return r.Page < r.TotalPages
}

func (r *SearchRoomsResult) HasPreviousPage() bool {
	return r.Page > 1
}

// RoomColumns describes the sortable axes of the room tables. The browser,
// the admin table and the filter panel all share this descriptor set.
func RoomColumns() []table.Column[room.Room] {
	return []table.Column[room.Room]{
		{Key: "code", Sortable: true, Value: func(r room.Room) any { return r.Code }},
		{Key: "floor", Sortable: true, Value: func(r room.Room) any { return floorRank(r.Floor) }},
		{Key: "building", Sortable: true, Value: func(r room.Room) any { return r.Building }},
		{Key: "capacity", Sortable: true, Value: func(r room.Room) any { return r.Capacity }},
		{Key: "dailyRate", Sortable: true, Value: func(r room.Room) any { return r.DailyRate }},
		{Key: "status", Sortable: true, Value: func(r room.Room) any { return string(r.Status) }},
		{Key: "createdAt", Sortable: true, Value: func(r room.Room) any { return r.CreatedAt }},
		{Key: "description", Sortable: false, Value: func(r room.Room) any { return r.Description }},
	}
}

func floorRank(f room.Floor) int {
	switch f {
	case room.FloorGround:
		return 0
	case room.FloorFirst:
		return 1
	case room.FloorSecond:
		return 2
	case room.FloorThird:
		return 3
	case room.FloorFourth:
		return 4
	case room.FloorFifth:
		return 5
	}
	return -1
}

type TypeNameSource interface {
	TypeName(id string) (string, bool)
}

type SearchRoomsUseCase struct {
	roomRepo room.Repository
	types    TypeNameSource
	cache    room.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

func NewSearchRoomsUseCase(
	roomRepo room.Repository,
	types TypeNameSource,
	cache room.CacheRepository,
	cacheTTL time.Duration,
	logger *slog.Logger,
) *SearchRoomsUseCase {
	return &SearchRoomsUseCase{
		roomRepo: roomRepo,
		types:    types,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Execute runs filter -> sort -> page over a snapshot of the inventory.
// Sorting always applies to the full filtered set, never per page. Results
// are cached keyed on the params and the store generation, so any inventory
// mutation naturally invalidates previous entries.
func (searchRoomsUseCase *SearchRoomsUseCase) Execute(ctx context.Context, params SearchRoomsParams) (*SearchRoomsResult, error) {
	startTime := time.Now()

	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search parameters: %w", err)
	}

	generation := searchRoomsUseCase.roomRepo.Generation(ctx)
	cacheKey := searchRoomsUseCase.generateCacheKey(params, generation)

	if searchRoomsUseCase.cache != nil {
		if cachedResult, err := searchRoomsUseCase.cache.Get(ctx, cacheKey); err == nil {
			var result SearchRoomsResult
			if err := json.Unmarshal(cachedResult, &result); err == nil {
				result.ProcessingTime = time.Since(startTime)
				return &result, nil
			}
			searchRoomsUseCase.logger.Warn("Failed to unmarshal cached search result", "cache_key", cacheKey, "error", err)
		}
	}

	rooms := searchRoomsUseCase.roomRepo.Snapshot(ctx)
	matched := room.Evaluate(rooms, params.Criteria, searchRoomsUseCase.resolveTypeName)
	sorted := table.Sort(matched, RoomColumns(), params.Sort)
	page := table.Page(sorted, params.PageSize, params.Page)

	result := &SearchRoomsResult{
		Rooms:      page,
		TotalHits:  len(sorted),
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: table.TotalPages(len(sorted), params.PageSize),
	}

	if searchRoomsUseCase.cache != nil {
		if resultData, err := json.Marshal(result); err == nil {
			if err := searchRoomsUseCase.cache.Set(ctx, cacheKey, resultData, searchRoomsUseCase.cacheTTL); err != nil {
				searchRoomsUseCase.logger.Warn("Failed to cache search result", "cache_key", cacheKey, "error", err)
			}
		}
	}

	result.ProcessingTime = time.Since(startTime)
	searchRoomsUseCase.logger.Debug("Room search executed",
		"total_hits", result.TotalHits,
		"page", result.Page,
		"duration", result.ProcessingTime)

	return result, nil
}

func (searchRoomsUseCase *SearchRoomsUseCase) resolveTypeName(typeID string) (string, bool) {
	if searchRoomsUseCase.types == nil {
		return "", false
	}
	return searchRoomsUseCase.types.TypeName(typeID)
}

func (searchRoomsUseCase *SearchRoomsUseCase) generateCacheKey(params SearchRoomsParams, generation uint64) string {
	paramsData, _ := json.Marshal(params)
	hash := sha256.Sum256(fmt.Appendf(paramsData, ":gen=%d", generation))
	return "search:rooms:" + hex.EncodeToString(hash[:8])
}
