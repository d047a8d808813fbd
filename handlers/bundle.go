package handlers

// HandlerBundle groups the handlers the route registry wires up.
type HandlerBundle struct {
	Agent   *AgentHandler
	Booking *BookingHandler
	Weather *WeatherHandler
}
