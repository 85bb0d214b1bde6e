// Package ratewatch extracts loan interest rate offers for a fixed set of
// banks from heterogeneous web documents (HTML tables, PDFs, scanned images)
// and classifies each offer by bank identity, ownership tier, loan category,
// and sub-category.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, pdf/, sqlite/).
package ratewatch
