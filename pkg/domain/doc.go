package domain

// domain package contains the Domain Models and Interfaces for the aptsales application.
//
// `domain/aptsales` package exposes root object for the aptsales application.
// Entrypoints of applications should instantiate the Aptsales object and use it to interact with the domain.
//
// `domain/ENTITY.go` has high-level entities (Domain Model types) and functions.
// For example, `domain/apartment.go` contains the `Apartment` entity.
//
// `domain/ENTITY` directory contains the "phisical" representation of the domain entities in the RDB.
// For example, `domain/apartment/db/apartment.go` declares the database interface of apartments,
// and `domain/apartment/db/postgres` implements it.
//
// `domain/ENTITY/interface.go` exposes the client interface to handle the domain entity.
//
// # Entities
//
// - `user`: Staff accounts. Superusers can sign in the admin dashboard.
//
// - `item`: Free-form items owned by users.
//
// - `apartment`: Apartments on sale. The full price is derived from area and price per square meter.
//
// - `client`: Buyers. A client is bound to an apartment, and documents (QR sheet and contract pages) are rendered per client.
//
// - `payment`: Payments made by clients, classified by payment types.
//
// - `history`: History entries, classified by history types.
//
// And others:
//
// - `schema`: Versioning of the database schema.
