// Package meshmcp exposes structured knowledge about the Mesh Design System
// (component names, props, usage docs, design tokens) to AI coding assistants.
// Source data lives only in rendered documentation pages, so the system
// scrapes them, parses the results into structured records, and keeps them
// fresh through a TTL cache with single-flight refresh semantics.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/).
package meshmcp
