// Package config provides configuration management for the sinking island game.
//
// The config package handles:
//   - Loading island configurations from JSON or YAML files
//   - Configuration validation through engine.ValidateGameConfig
//   - Default configuration management
//   - Configuration discovery and listing
//   - Importing standalone pieces and spinner layout files
//
// Configuration Format:
//
// Each configuration defines the player count, pawns per player, the
// terrain layers of the island from the centre outwards, the size of the
// coral goal boxes and the spinner sections with their token weights.
//
// Errors:
//
// Files that cannot be read wrap engine.ErrIO; files that do not decode wrap
// engine.ErrFormat; files that decode but fail validation wrap
// ErrInvalidConfig.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameConfig, err := manager.LoadConfig("small")
//	if err != nil {
//		log.Fatal(err)
//	}
package config
