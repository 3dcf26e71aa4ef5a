// Package session keeps the running games of a server in memory.
//
// Each session owns one engine.GameEngine built from a copy of an island
// configuration, so sessions never share board state. Sessions are keyed by
// short case-insensitive IDs; an empty ID asks the manager for a random
// 4-character one.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", config, 3)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
//
//	// Drop games nobody touched for an hour
//	manager.CleanupExpiredSessions(time.Hour)
//
// Sessions live only as long as the process.
package session
