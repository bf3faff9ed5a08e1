// Package service implements the task board use cases on top of the store
// and the external suggestion client.
//
// Service methods return store.ErrTaskNotFound (wrapped) for missing tasks and
// domain validation errors unchanged; everything else is wrapped in a
// TaskServiceError. The API layer maps these to HTTP status codes.
package service
