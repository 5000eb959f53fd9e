package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"

	"gepe-server/internal/observability"
	"gepe-server/internal/store"
)

// UserStore defines the database operations required by UserProcessor
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
	GetOrCreateUserByEmail(ctx context.Context, email string, fullName *string) (store.User, error)
	ListAddressesByUser(ctx context.Context, userID int64) ([]store.Address, error)
	GetAddress(ctx context.Context, id int64) (store.Address, error)
	CreateAddress(ctx context.Context, address store.Address) (store.Address, error)
	UpdateAddress(ctx context.Context, address store.Address) (store.Address, error)
	DeleteAddress(ctx context.Context, id int64) error
	ClearDefaultAddresses(ctx context.Context, userID int64) error
	SetDefaultAddress(ctx context.Context, id int64) error
}

var ErrAddressNotFound = errors.New("address not found")

type UserProcessor struct {
	store  UserStore
	logger *observability.Logger
}

func New(store UserStore, logger *observability.Logger) UserProcessor {
	return UserProcessor{
		store:  store,
		logger: logger,
	}
}

// Profile is the storefront view of a user account.
type Profile struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
}

// GuestProfile returns the fixed guest account. Checkout runs without
// accounts; the profile endpoint exists so the storefront header has
// something to show.
func (p *UserProcessor) GuestProfile(ctx context.Context) Profile {
	name := "Invitado GEPE"
	return Profile{ID: 1, Email: "invitado@gepe.com", FullName: &name}
}

// ListAddresses returns the address book for the given email, default
// address first. An unknown email yields an empty book, not an error.
func (p *UserProcessor) ListAddresses(ctx context.Context, email string) ([]store.Address, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []store.Address{}, nil
		}
		p.logger.Error(ctx, "failed to look up user for addresses", err)
		return nil, err
	}

	addresses, err := p.store.ListAddressesByUser(ctx, user.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to list addresses", err)
		return nil, err
	}
	return addresses, nil
}

// CreateAddressParams carries a new address book entry keyed by the owning
// user's email. The user row is created on first use.
type CreateAddressParams struct {
	Email       string
	FullName    *string
	Phone       *string
	Label       *string
	AddressLine string
	City        *string
	Province    *string
	ZipCode     *string
	IsDefault   bool
}

// CreateAddress stores a new address, creating the user on first contact.
// Marking it default unsets any previous default for the same user.
func (p *UserProcessor) CreateAddress(ctx context.Context, params CreateAddressParams) (store.Address, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	user, err := p.store.GetOrCreateUserByEmail(ctx, email, params.FullName)
	if err != nil {
		p.logger.Error(ctx, "failed to get or create user", err)
		return store.Address{}, err
	}

	if params.IsDefault {
		if err := p.store.ClearDefaultAddresses(ctx, user.ID); err != nil {
			p.logger.Error(ctx, "failed to clear default addresses", err)
			return store.Address{}, err
		}
	}

	created, err := p.store.CreateAddress(ctx, store.Address{
		UserID:      user.ID,
		FullName:    params.FullName,
		Phone:       params.Phone,
		Label:       params.Label,
		AddressLine: params.AddressLine,
		City:        params.City,
		Province:    params.Province,
		ZipCode:     params.ZipCode,
		IsDefault:   params.IsDefault,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create address", err)
		return store.Address{}, err
	}
	p.logger.Info(ctx, "address created")
	return created, nil
}

// UpdateAddressParams carries the address fields an update may touch. Nil
// fields keep their current value.
type UpdateAddressParams struct {
	FullName    *string
	Phone       *string
	Label       *string
	AddressLine *string
	City        *string
	Province    *string
	ZipCode     *string
	IsDefault   *bool
}

// UpdateAddress applies a partial update. Setting is_default true demotes
// the user's other addresses first.
func (p *UserProcessor) UpdateAddress(ctx context.Context, id int64, params UpdateAddressParams) (store.Address, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "address_id", Value: id})

	address, err := p.store.GetAddress(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Address{}, ErrAddressNotFound
		}
		p.logger.Error(ctx, "failed to get address", err)
		return store.Address{}, err
	}

	if params.FullName != nil {
		address.FullName = params.FullName
	}
	if params.Phone != nil {
		address.Phone = params.Phone
	}
	if params.Label != nil {
		address.Label = params.Label
	}
	if params.AddressLine != nil {
		address.AddressLine = *params.AddressLine
	}
	if params.City != nil {
		address.City = params.City
	}
	if params.Province != nil {
		address.Province = params.Province
	}
	if params.ZipCode != nil {
		address.ZipCode = params.ZipCode
	}
	if params.IsDefault != nil {
		if *params.IsDefault && !address.IsDefault {
			if err := p.store.ClearDefaultAddresses(ctx, address.UserID); err != nil {
				p.logger.Error(ctx, "failed to clear default addresses", err)
				return store.Address{}, err
			}
		}
		address.IsDefault = *params.IsDefault
	}

	updated, err := p.store.UpdateAddress(ctx, address)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Address{}, ErrAddressNotFound
		}
		p.logger.Error(ctx, "failed to update address", err)
		return store.Address{}, err
	}
	return updated, nil
}

// DeleteAddress removes an address book entry.
func (p *UserProcessor) DeleteAddress(ctx context.Context, id int64) error {
	if err := p.store.DeleteAddress(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAddressNotFound
		}
		p.logger.Error(ctx, "failed to delete address", err)
		return err
	}
	return nil
}

// SetDefaultAddress makes the given address the user's only default.
func (p *UserProcessor) SetDefaultAddress(ctx context.Context, id int64) (store.Address, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "address_id", Value: id})

	address, err := p.store.GetAddress(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Address{}, ErrAddressNotFound
		}
		p.logger.Error(ctx, "failed to get address", err)
		return store.Address{}, err
	}

	if err := p.store.ClearDefaultAddresses(ctx, address.UserID); err != nil {
		p.logger.Error(ctx, "failed to clear default addresses", err)
		return store.Address{}, err
	}
	if err := p.store.SetDefaultAddress(ctx, id); err != nil {
		p.logger.Error(ctx, "failed to set default address", err)
		return store.Address{}, err
	}

	address.IsDefault = true
	return address, nil
}
