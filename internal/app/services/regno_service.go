package services

import (
	"context"
	"fmt"
	"time"

	"github.com/obiwandem/varsity-backend/internal/app/repositories"
	"github.com/obiwandem/varsity-backend/internal/pkg/apperrors"
)

// maxRegNoSequence is the highest sequence number a faculty/department/year
// bucket can hold with a three-digit suffix.
const maxRegNoSequence = 999

// RegNoService generates registration numbers of the form
// FACCODE/DEPTCODE/YY/NNN, where YY is the two-digit admission year and
// NNN is a zero-padded per-bucket sequence.
type RegNoService struct {
	userRepo repositories.IUserRepository
	now      func() time.Time
}

// NewRegNoService creates a new RegNoService
func NewRegNoService(userRepo repositories.IUserRepository) *RegNoService {
	return &RegNoService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// Generate produces the next registration number for the given faculty and
// department codes. The sequence is derived from a count of existing numbers
// sharing the prefix; the UNIQUE constraint on reg_no catches the case where
// two registrations race to the same count, and the caller retries.
func (s *RegNoService) Generate(ctx context.Context, facultyCode, departmentCode string) (string, error) {
	year := s.now().Year() % 100
	prefix := fmt.Sprintf("%s/%s/%02d/", facultyCode, departmentCode, year)

	count, err := s.userRepo.CountByRegNoPrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("error determining registration number sequence: %w", err)
	}

	if count >= maxRegNoSequence {
		return "", apperrors.NewCustomError(apperrors.ErrRegNoCapacityExceeded,
			fmt.Sprintf("registration capacity reached for %s/%s/%02d: %d numbers already issued",
				facultyCode, departmentCode, year, count))
	}

	return fmt.Sprintf("%s%03d", prefix, count+1), nil
}
