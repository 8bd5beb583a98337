/*
Package modkit is the client-side moderation core: mutable domain entities
(reports, comments, posts, persons, communities) hydrated from API records, a
ModTracker which is the single mutation point for ban/remove/purge/resolve
actions, and declarative menu resolvers that compute which actions a given
viewer may take on a given entity.

Entities are shared by pointer: every report or comment referencing the same
person holds the same *Person, interned through an EntityStore, so a ban
toggled once is visible everywhere. All entity mutation is marshaled onto the
tracker's single apply goroutine; there is no per-entity locking. The tracker
assumes at most one in-flight action per entity at a time — debouncing repeat
triggers is the caller's responsibility.

Failures never propagate to callers as return values. A failed action leaves
entity state untouched and is forwarded to the configured ErrorSink; callers
observe failure only through unchanged state.
*/
package modkit
