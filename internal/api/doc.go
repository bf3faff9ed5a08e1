// Package api handles incoming HTTP requests, request validation and response
// formatting for the task board. It translates HTTP concerns into calls on
// the login and task services.
package api
