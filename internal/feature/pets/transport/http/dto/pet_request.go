// Package dto defines data transfer objects for the pets feature's HTTP transport layer.
package dto

// PetReq represents the form body for creating or updating a pet.
// Schema validation happens in the action layer, which is also reachable
// without HTTP; the transport only decodes the shape.
type PetReq struct {
	Name      string `json:"name"`
	OwnerName string `json:"ownerName"`
	ImageURL  string `json:"imageUrl"`
	Age       int    `json:"age"`
	Notes     string `json:"notes"`
}
