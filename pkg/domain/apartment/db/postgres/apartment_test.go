package postgres_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/opst/aptsales/pkg/conn/db/postgres/pool/testenv"
	"github.com/opst/aptsales/pkg/domain"
	kpgapt "github.com/opst/aptsales/pkg/domain/apartment/db/postgres"
	domerr "github.com/opst/aptsales/pkg/domain/errors"
	kpguser "github.com/opst/aptsales/pkg/domain/user/db/postgres"
	"github.com/opst/aptsales/pkg/utils/try"
)

func TestApartment(t *testing.T) {
	ctx := context.Background()
	broaker := testenv.NewPoolBroaker(ctx, t)

	t.Run("full price is maintained by the database", func(t *testing.T) {
		pool := broaker.GetPool(ctx, t)
		testee := kpgapt.New(pool)
		owner := try.To(kpguser.New(pool).Create(ctx, domain.UserParam{
			Email: "owner@example.com", IsActive: true, HashedPassword: "x",
		})).OrFatal(t)

		created := try.To(testee.Create(ctx, domain.ApartmentParam{
			Building: "A", Floor: "3", AptNo: "12", AptType: "B2",
			UserId: &owner.Id, Area: 120, MeterPrice: 1500,
		})).OrFatal(t)
		if created.FullPrice != 180000 {
			t.Errorf("full price: got %v", created.FullPrice)
		}
		if created.UserId == nil || *created.UserId != owner.Id {
			t.Errorf("user id: got %v", created.UserId)
		}

		updated := try.To(testee.Update(ctx, created.Id, domain.ApartmentParam{
			Building: "A", Floor: "3", AptNo: "12", AptType: "B2", Area: 100, MeterPrice: 1500,
		})).OrFatal(t)
		if updated.FullPrice != 150000 || updated.UserId != nil {
			t.Errorf("updated: %+v", updated)
		}

		got := try.To(testee.Get(ctx, created.Id)).OrFatal(t)
		if got != updated {
			t.Errorf("Get:\n- got : %+v\n- want: %+v", got, updated)
		}
	})

	t.Run("invalid apartments are rejected", func(t *testing.T) {
		testee := kpgapt.New(broaker.GetPool(ctx, t))

		for name, p := range map[string]domain.ApartmentParam{
			"without building": {AptNo: "1"},
			"negative area":    {Building: "A", AptNo: "1", Area: -1},
		} {
			if _, err := testee.Create(ctx, p); !errors.Is(err, domerr.ErrInvalid) {
				t.Errorf("%s: unexpected error: %v", name, err)
			}
		}
	})

	t.Run("apartments are listed by building, floor and apt_no in descending order", func(t *testing.T) {
		testee := kpgapt.New(broaker.GetPool(ctx, t))
		for _, p := range []domain.ApartmentParam{
			{Building: "A", Floor: "1", AptNo: "1", Area: 50, MeterPrice: 10},
			{Building: "B", Floor: "1", AptNo: "2", Area: 70, MeterPrice: 10},
			{Building: "A", Floor: "2", AptNo: "3", Area: 60, MeterPrice: 10},
			{Building: "A", Floor: "2", AptNo: "4", Area: 40, MeterPrice: 10},
		} {
			try.To(testee.Create(ctx, p)).OrFatal(t)
		}

		aptNos := func(p domain.Page[domain.Apartment]) []string {
			ret := []string{}
			for _, a := range p.Items {
				ret = append(ret, a.AptNo)
			}
			return ret
		}

		page := try.To(testee.List(ctx, domain.ListQuery{})).OrFatal(t)
		if got, want := aptNos(page), []string{"2", "4", "3", "1"}; !slices.Equal(got, want) {
			t.Errorf("default order:\n- got : %v\n- want: %v", got, want)
		}

		page = try.To(testee.List(ctx, domain.ListQuery{SortBy: "full_price"})).OrFatal(t)
		if got, want := aptNos(page), []string{"4", "1", "3", "2"}; !slices.Equal(got, want) {
			t.Errorf("by full price:\n- got : %v\n- want: %v", got, want)
		}

		page = try.To(testee.List(ctx, domain.ListQuery{SortBy: "area", Descending: true, Page: 2, PageSize: 3})).OrFatal(t)
		if got, want := aptNos(page), []string{"4"}; !slices.Equal(got, want) || page.Total != 4 || page.Pages() != 2 {
			t.Errorf("second page: %v (%+v)", got, page)
		}

		page = try.To(testee.List(ctx, domain.ListQuery{Search: "b"})).OrFatal(t)
		if got, want := aptNos(page), []string{"2"}; !slices.Equal(got, want) {
			t.Errorf("search:\n- got : %v\n- want: %v", got, want)
		}
	})

	t.Run("deleted apartment is missing", func(t *testing.T) {
		testee := kpgapt.New(broaker.GetPool(ctx, t))
		created := try.To(testee.Create(ctx, domain.ApartmentParam{Building: "A", AptNo: "1"})).OrFatal(t)

		if err := testee.Delete(ctx, created.Id); err != nil {
			t.Fatal(err)
		}
		if _, err := testee.Get(ctx, created.Id); !errors.Is(err, domerr.ErrMissing) {
			t.Errorf("unexpected error: %v", err)
		}
		if _, err := testee.Update(ctx, created.Id, domain.ApartmentParam{Building: "A", AptNo: "1"}); !errors.Is(err, domerr.ErrMissing) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
