package dto

// GreetRequest is the body accepted by POST /greet
type GreetRequest struct {
	Name string `json:"name" example:"Ada"`
}

// GreetingResponse carries a formatted greeting
type GreetingResponse struct {
	Greeting string `json:"greeting" example:"Hello, Ada, from Go!"`
}
