package domain

import (
	"context"

	"github.com/google/uuid"
)

// Store is the basic set of operations for a kind of record.
//
// K is the type of primary key, R is the record and P is values to create or update R.
type Store[K comparable, R any, P any] interface {
	// Get returns the record having id.
	//
	// When there are no such records, it returns an error wrapping ErrMissing.
	Get(ctx context.Context, id K) (R, error)

	// List returns a page of records.
	//
	// When q.SortBy is not sortable, it returns an error wrapping ErrInvalid.
	List(ctx context.Context, q ListQuery) (Page[R], error)

	// Create adds a new record.
	//
	// When p is not valid or refers missing records, it returns an error wrapping ErrInvalid.
	// When p conflicts with another record, it returns an error wrapping ErrConflict.
	Create(ctx context.Context, p P) (R, error)

	// Update overwrites the record having id with p.
	//
	// Errors are same as Get and Create.
	Update(ctx context.Context, id K, p P) (R, error)

	// Delete removes the record having id.
	//
	// When there are no such records, it returns an error wrapping ErrMissing.
	Delete(ctx context.Context, id K) error
}

// Listing is how records of a kind are searched and sorted.
type Listing struct {
	// columns matched with ListQuery.Search
	Searchable []string

	// columns which ListQuery.SortBy can be
	Sortable []string

	// order when ListQuery.SortBy is empty
	DefaultOrder []Order
}

var (
	UserListing = Listing{
		Searchable:   []string{"email", "full_name"},
		Sortable:     []string{"email", "is_active", "is_superuser"},
		DefaultOrder: []Order{{Column: "email"}},
	}
	ItemListing = Listing{
		Searchable:   []string{"title", "description"},
		Sortable:     []string{"title"},
		DefaultOrder: []Order{{Column: "title"}},
	}
	ApartmentListing = Listing{
		Searchable: []string{"building", "floor", "apt_no"},
		Sortable:   []string{"building", "floor", "apt_no", "area", "full_price"},
		DefaultOrder: []Order{
			{Column: "building", Descending: true},
			{Column: "floor", Descending: true},
			{Column: "apt_no", Descending: true},
		},
	}
	ClientListing = Listing{
		Searchable:   []string{"name", "id_no", "phone_number"},
		Sortable:     []string{"name", "id_no"},
		DefaultOrder: []Order{{Column: "name"}},
	}
	PaymentTypeListing = Listing{
		Searchable:   []string{"name"},
		Sortable:     []string{"name"},
		DefaultOrder: []Order{{Column: "name"}},
	}
	PaymentListing = Listing{
		Searchable:   []string{"client_id", "payment_type_id"},
		Sortable:     []string{"date_of_payment", "amount"},
		DefaultOrder: []Order{{Column: "date_of_payment", Descending: true}},
	}
	HistoryTypeListing = Listing{
		Searchable:   []string{"name"},
		Sortable:     []string{"name"},
		DefaultOrder: []Order{{Column: "name"}},
	}
	HistoryListing = Listing{
		Searchable:   []string{"type_id"},
		Sortable:     []string{"datetime"},
		DefaultOrder: []Order{{Column: "datetime", Descending: true}},
	}
)

type (
	UserStore        = Store[uuid.UUID, User, UserParam]
	ItemStore        = Store[int64, Item, ItemParam]
	ApartmentStore   = Store[int64, Apartment, ApartmentParam]
	ClientStore      = Store[int64, Client, ClientParam]
	PaymentTypeStore = Store[int64, PaymentType, PaymentTypeParam]
	PaymentStore     = Store[int64, Payment, PaymentParam]
	HistoryTypeStore = Store[int64, HistoryType, HistoryTypeParam]
	HistoryStore     = Store[int64, History, HistoryParam]
)
