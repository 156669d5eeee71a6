package server

func (s *Server) registerRoutes() {
	s.echo.GET("/healthz", s.handleHealth)

	api := s.echo.Group("/api")
	api.POST("/entries", s.handleSubmit)
	api.GET("/entries", s.handleEntries)
	api.GET("/scores", s.handleScores)
	api.GET("/about", s.handleAbout)
}
