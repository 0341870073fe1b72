// Package contacts scrapes contact records (name, title, email) from
// faculty directory pages, stores them in SQLite without duplicating
// known emails, and renders them as a fixed-column text table that stays
// aligned when the text mixes narrow and wide East Asian characters.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, regexp/).
package contacts
