//go:build unit || e2e

package builder

import (
	"time"

	"github.com/aljonb/sched/internal/domain/business"
	"github.com/aljonb/sched/internal/usecase/queries"

	"github.com/google/uuid"
)

type BusinessBuilder struct {
	OwnerID     uuid.UUID
	Name        string
	Timezone    string
	AutoConfirm bool
	Now         time.Time
}

func NewBusinessBuilder() *BusinessBuilder {
	return &BusinessBuilder{
		OwnerID:     uuid.New(),
		Name:        "Corner Barber",
		Timezone:    "UTC",
		AutoConfirm: true,
		Now:         time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BusinessBuilder) With(mutate func(*BusinessBuilder)) *BusinessBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BusinessBuilder) BuildDomain() (*business.Business, error) {
	return business.NewBusiness(b.OwnerID, b.Name, b.Timezone, b.AutoConfirm, b.Now)
}

func (b *BusinessBuilder) MustBuildDomain() *business.Business {
	biz, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return biz
}

// BuildView is the read model of this business with a fresh ID.
func (b *BusinessBuilder) BuildView() *queries.BusinessView {
	return &queries.BusinessView{
		ID:          uuid.New(),
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Timezone:    b.Timezone,
		AutoConfirm: b.AutoConfirm,
		CreatedAt:   b.Now,
	}
}

// Fluent builder methods
func (b *BusinessBuilder) WithOwnerID(id uuid.UUID) *BusinessBuilder {
	b.OwnerID = id
	return b
}

func (b *BusinessBuilder) WithName(name string) *BusinessBuilder {
	b.Name = name
	return b
}

func (b *BusinessBuilder) WithTimezone(tz string) *BusinessBuilder {
	b.Timezone = tz
	return b
}

func (b *BusinessBuilder) AsManualConfirm() *BusinessBuilder {
	b.AutoConfirm = false
	return b
}
