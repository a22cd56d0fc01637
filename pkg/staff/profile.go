package staff

import (
	"context"

	"github.com/vetcare-app/vetcare-backend/pkg/users"
	"golang.org/x/sync/errgroup"
)

// Profile joins the identity of an employee with their staff record
type Profile struct {
	User  *users.User  `json:"user"`
	Staff *StaffRecord `json:"staff"`
}

// ProfilePatch holds the profile fields to change. A nil field stays unchanged, an empty phone or address clears it.
// An empty availability counts as absent.
type ProfilePatch struct {
	Phone        *string       `json:"phone"`
	Address      *string       `json:"address"`
	Availability *Availability `json:"availability"`
}

// ContactView is the contact subset of an identity after an update
type ContactView struct {
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// AvailabilityView is the staff subset of a profile after an update
type AvailabilityView struct {
	Availability Availability `json:"availability"`
}

// ProfileUpdate is the state of the patched fields after an update
type ProfileUpdate struct {
	UpdatedUser  ContactView      `json:"updatedUser"`
	UpdatedStaff AvailabilityView `json:"updatedStaff"`
}

// GetProfile loads identity and staff record concurrently. Either one missing is ErrProfileNotFound.
func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	profile := Profile{}
	group, groupContext := errgroup.WithContext(ctx)

	group.Go(func() error {
		user, err := s.userFinder().FindByID(groupContext, userID)
		if err != nil {
			return asNotFound(err, ErrProfileNotFound)
		}
		profile.User = user
		return nil
	})

	group.Go(func() error {
		record, err := s.find(groupContext, userID)
		if err != nil {
			return asNotFound(err, ErrProfileNotFound)
		}
		profile.Staff = record
		return nil
	})

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// UpdateProfile applies patch to the identity and the staff record in one transaction.
// The staff record is written first, the identity write is retried on transient failures.
func (s *Service) UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (*ProfileUpdate, error) {
	if patch.Availability != nil && *patch.Availability == "" {
		patch.Availability = nil
	}
	if patch.Availability != nil && !patch.Availability.Valid() {
		return nil, validationError("availability must be one of: available, unavailable")
	}

	var update *ProfileUpdate
	err := s.withLock(ctx, userID, func() error {
		user, err := s.Users.FindByID(ctx, userID)
		if err != nil {
			return asNotFound(err, ErrProfileNotFound)
		}

		record, err := s.find(ctx, userID, "availability")
		if err != nil {
			return asNotFound(err, ErrProfileNotFound)
		}

		if patch.Phone != nil {
			user.Phone = *patch.Phone
		}
		if patch.Address != nil {
			user.Address = *patch.Address
		}
		if patch.Availability != nil {
			record.Availability = *patch.Availability
		}
		if record.Availability == "" {
			record.Availability = AvailabilityAvailable
		}

		err = s.Transactor.WithTransaction(ctx, func(ctx context.Context) error {
			if patch.Availability != nil {
				err := s.Repository.UpdateAvailability(ctx, userID, record.Availability)
				if err != nil {
					return err
				}
			}

			if patch.Phone == nil && patch.Address == nil {
				return nil
			}

			return s.Retrier.Do(ctx, func() error {
				return s.Users.UpdateContact(ctx, user)
			})
		})
		if err != nil {
			return asNotFound(err, ErrProfileNotFound)
		}

		err = s.userFinder().Invalidate(ctx, userID)
		if err != nil {
			s.Logger.Error("Problem invalidating cached user "+userID, err)
		}

		update = &ProfileUpdate{
			UpdatedUser:  ContactView{Phone: user.Phone, Address: user.Address},
			UpdatedStaff: AvailabilityView{Availability: record.Availability},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return update, nil
}
