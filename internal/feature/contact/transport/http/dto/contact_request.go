// Package dto defines the request body of the contact endpoint.
package dto

// ContactReq is the body of POST /contact.
type ContactReq struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=5000"`
}
