// Package service is the layer between the transports (REST, WebSocket,
// MCP) and the game engine.
//
// GameService resolves a session, runs one engine operation under the
// service lock and reports the outcome as an ActionResult. Moves the rules
// forbid come back as results with Success false and the engine's reason in
// Message; only missing sessions and infrastructure failures are errors.
//
// Actor moves, and transport moves during the spinning phase, are driven by
// the wheel: the service takes the movement token from the last spin and
// refuses the move unless the spin's section names the piece being moved.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	info, err := gameService.CreateSession(ctx, "classic", 3)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, _ := gameService.MovePawn(ctx, info.ID, 11, engine.NewCubeCoordinate(0, 0, 0))
//	if !result.Success {
//		fmt.Println(result.Message)
//	}
package service
