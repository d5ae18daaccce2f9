package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"hhdonations/internal/caching"
	"hhdonations/internal/common"
	"hhdonations/internal/geo"
	"hhdonations/internal/models"
	"hhdonations/internal/query"
	"hhdonations/internal/repositories"

	"github.com/google/uuid"
)

type BinService interface {
	Create(ctx context.Context, bin *models.Bin) (*models.Bin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Bin, error)
	Update(ctx context.Context, id uuid.UUID, patch *models.BinPatch) (*models.Bin, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, opts query.Options) (query.Result[*models.Bin], error)
	ListPublic(ctx context.Context, opts query.Options, origin *geo.Coordinates) (query.Result[*models.BinWithDistance], error)
}

type binService struct {
	binRepo repositories.BinRepository
	cache   caching.CacheService
}

func NewBinService(binRepo repositories.BinRepository, cache caching.CacheService) BinService {
	return &binService{binRepo: binRepo, cache: cache}
}

const publicBinsCacheTTL = 5 * time.Minute

// invalidatePublicListing drops the cached public listing after any
// bin mutation; the next public read rebuilds it from the store.
func (s *binService) invalidatePublicListing(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePublicBins(ctx); err != nil {
		log.Printf("Failed to invalidate public bins cache: %v", err)
	}
}

func (s *binService) Create(ctx context.Context, bin *models.Bin) (*models.Bin, error) {
	if bin.Name == "" {
		return nil, common.NewValidationError("name", "name is required")
	}
	if bin.Address == "" {
		return nil, common.NewValidationError("address", "address is required")
	}
	if bin.Hours == "" {
		return nil, common.NewValidationError("hours", "hours is required")
	}
	if bin.Type == "" {
		return nil, common.NewValidationError("type", "type is required")
	}
	if !bin.Type.Valid() {
		return nil, common.NewValidationError("type", `type must be either "Indoor" or "Outdoor"`)
	}
	if bin.Status == "" {
		bin.Status = models.BinStatusActive
	}
	if !bin.Status.Valid() {
		return nil, common.NewValidationError("status", `status must be "active", "inactive", or "maintenance"`)
	}

	bin.ID = uuid.New()
	if err := s.binRepo.Create(ctx, bin); err != nil {
		return nil, common.NewStorageError(err)
	}

	created, err := s.binRepo.GetByID(ctx, bin.ID)
	if err != nil {
		return nil, common.NewStorageError(err)
	}
	s.invalidatePublicListing(ctx)
	return created, nil
}

func (s *binService) GetByID(ctx context.Context, id uuid.UUID) (*models.Bin, error) {
	bin, err := s.binRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, common.NewNotFoundError("bin")
	}
	if err != nil {
		return nil, common.NewStorageError(err)
	}
	return bin, nil
}

// Update applies only the supplied fields; everything else is left
// byte-for-byte as it was.
func (s *binService) Update(ctx context.Context, id uuid.UUID, patch *models.BinPatch) (*models.Bin, error) {
	bin, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Type != nil && !patch.Type.Valid() {
		return nil, common.NewValidationError("type", `type must be either "Indoor" or "Outdoor"`)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, common.NewValidationError("status", `status must be "active", "inactive", or "maintenance"`)
	}

	if patch.Name != nil {
		bin.Name = *patch.Name
	}
	if patch.Address != nil {
		bin.Address = *patch.Address
	}
	if patch.Latitude != nil {
		bin.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		bin.Longitude = patch.Longitude
	}
	if patch.Hours != nil {
		bin.Hours = *patch.Hours
	}
	if patch.Type != nil {
		bin.Type = *patch.Type
	}
	if patch.DriveUp != nil {
		bin.DriveUp = *patch.DriveUp
	}
	if patch.Notes != nil {
		bin.Notes = patch.Notes
	}
	if patch.Distance != nil {
		bin.Distance = patch.Distance
	}
	if patch.Status != nil {
		bin.Status = *patch.Status
	}

	if err := s.binRepo.Update(ctx, bin); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, common.NewNotFoundError("bin")
		}
		return nil, common.NewStorageError(err)
	}

	updated, err := s.binRepo.GetByID(ctx, id)
	if err != nil {
		return nil, common.NewStorageError(err)
	}
	s.invalidatePublicListing(ctx)
	return updated, nil
}

func (s *binService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.binRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return common.NewNotFoundError("bin")
	}
	if err != nil {
		return common.NewStorageError(err)
	}
	s.invalidatePublicListing(ctx)
	return nil
}

// List is the administrative view over all statuses.
func (s *binService) List(ctx context.Context, opts query.Options) (query.Result[*models.Bin], error) {
	bins, err := s.binRepo.List(ctx)
	if err != nil {
		return query.Result[*models.Bin]{}, common.NewStorageError(err)
	}
	return query.Apply(bins, opts, binFieldValue), nil
}

// ListPublic returns active bins only, annotated with the
// caller-relative distance when an origin is supplied. Distance
// ordering ranks computed distances first, then the static distance
// field, with bins lacking both last.
func (s *binService) ListPublic(ctx context.Context, opts query.Options, origin *geo.Coordinates) (query.Result[*models.BinWithDistance], error) {
	bins, err := s.publicBins(ctx)
	if err != nil {
		return query.Result[*models.BinWithDistance]{}, err
	}

	annotated := make([]*models.BinWithDistance, 0, len(bins))
	for _, bin := range bins {
		if bin.Status != models.BinStatusActive {
			continue
		}
		entry := &models.BinWithDistance{Bin: *bin}
		if origin != nil && bin.HasCoordinates() {
			km := geo.DistanceKm(*origin, geo.Coordinates{Latitude: *bin.Latitude, Longitude: *bin.Longitude})
			entry.DistanceKm = &km
		}
		annotated = append(annotated, entry)
	}

	if opts.Sort == nil {
		opts.Sort = &query.Sort{Field: "distance", Direction: query.Asc}
	}

	filtered := query.FilterRecords(annotated, opts.Filters, binWithDistanceFieldValue)
	if opts.Sort.Field == "distance" {
		sortByDistance(filtered, opts.Sort.Direction)
	} else {
		query.SortRecords(filtered, opts.Sort, binWithDistanceFieldValue)
	}
	return query.Paginate(filtered, opts.Page, opts.PageSize), nil
}

// publicBins reads the bin set for the public listing through the
// cache when one is configured.
func (s *binService) publicBins(ctx context.Context) ([]*models.Bin, error) {
	if s.cache != nil {
		if bins, err := s.cache.GetPublicBins(ctx); err == nil {
			return bins, nil
		}
	}
	bins, err := s.binRepo.List(ctx)
	if err != nil {
		return nil, common.NewStorageError(err)
	}
	if s.cache != nil {
		if err := s.cache.SetPublicBins(ctx, bins, publicBinsCacheTTL); err != nil {
			log.Printf("Failed to cache public bins: %v", err)
		}
	}
	return bins, nil
}

// sortByDistance orders bins closest-first: a computed distance beats
// the static distance field, which beats having neither.
func sortByDistance(bins []*models.BinWithDistance, direction query.Direction) {
	rank := func(b *models.BinWithDistance) (int, float64) {
		if b.DistanceKm != nil {
			return 0, *b.DistanceKm
		}
		if km, ok := parseStaticDistance(b.Distance); ok {
			return 1, km
		}
		return 2, 0
	}
	sort.SliceStable(bins, func(i, j int) bool {
		ri, di := rank(bins[i])
		rj, dj := rank(bins[j])
		if ri != rj {
			return ri < rj
		}
		if direction == query.Desc {
			return di > dj
		}
		return di < dj
	})
}

// parseStaticDistance reads the leading number out of the free-text
// distance field (e.g. "8.2 km").
func parseStaticDistance(distance *string) (float64, bool) {
	if distance == nil {
		return 0, false
	}
	fields := strings.Fields(*distance)
	if len(fields) == 0 {
		return 0, false
	}
	km, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	return km, true
}

func binFieldValue(bin *models.Bin, field string) (string, bool) {
	switch field {
	case "id":
		return bin.ID.String(), true
	case "bin_number":
		return bin.BinNumber, true
	case "name":
		return bin.Name, true
	case "address":
		return bin.Address, true
	case "hours":
		return bin.Hours, true
	case "type":
		return string(bin.Type), true
	case "status":
		return string(bin.Status), true
	case "notes":
		if bin.Notes == nil {
			return "", false
		}
		return *bin.Notes, true
	case "distance":
		if bin.Distance == nil {
			return "", false
		}
		return *bin.Distance, true
	default:
		return "", false
	}
}

func binWithDistanceFieldValue(bin *models.BinWithDistance, field string) (string, bool) {
	return binFieldValue(&bin.Bin, field)
}
