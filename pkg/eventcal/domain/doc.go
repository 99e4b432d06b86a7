// Package domain defines the entity model for eventcal: events, venues,
// people, and the enrollment relation between people and events.
//
// Entities are mutated only through their setter methods, each of which
// validates the proposed value before assigning it. A failed validation
// leaves the entity unchanged and returns a *ValidationError describing
// the rejected field. Loading an already-persisted row back into an
// entity bypasses the setters; validation applies to new values only.
package domain
