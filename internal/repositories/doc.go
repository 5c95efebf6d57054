// Package repositories implements SQLite data access for the song catalog.
//
// The catalog schema is owned by the bot; this console reads it to build the
// library view and writes to it only for seeding and metadata enrichment.
//
// [LibraryRepository.Recent] produces the aggregated rows the Library panel
// consumes: genre, contributor, and source token lists are GROUP_CONCAT
// subqueries, last_added is the most recent source timestamp falling back to
// the song's created_at, and play/like/dislike counts are COUNT subqueries.
package repositories
