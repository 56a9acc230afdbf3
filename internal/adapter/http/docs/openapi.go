// Package docs describes the HTTP API as an OpenAPI 3 document.
package docs

import (
	"net/http"

	"github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"taskboard/internal/adapter/http/dto"
	"taskboard/pkg/apierrors"
)

type operation struct {
	method   string
	path     string
	summary  string
	tag      string
	secured  bool
	request  []interface{}
	response interface{}
	status   int
	errors   []int
}

const bearerScheme = "bearerAuth"

var operations = []operation{
	{method: http.MethodGet, path: "/api/health", summary: "Liveness and database reachability", tag: "Health",
		response: new(dto.HealthBasic), status: http.StatusOK},
	{method: http.MethodGet, path: "/api/health/report", summary: "Detailed health report", tag: "Health",
		response: new(dto.HealthAdvanced), status: http.StatusOK},
	{method: http.MethodPost, path: "/api/auth/register", summary: "Register a user", tag: "Auth",
		request: []interface{}{new(dto.RegisterRequest)}, response: new(dto.AuthResponse), status: http.StatusCreated,
		errors: []int{http.StatusBadRequest}},
	{method: http.MethodPost, path: "/api/auth/login", summary: "Log in", tag: "Auth",
		request: []interface{}{new(dto.LoginRequest)}, response: new(dto.AuthResponse), status: http.StatusOK,
		errors: []int{http.StatusBadRequest, http.StatusUnauthorized}},
	{method: http.MethodGet, path: "/api/auth/me", summary: "Current user", tag: "Auth", secured: true,
		response: new(dto.MeResponse), status: http.StatusOK},
	{method: http.MethodGet, path: "/api/tasks", summary: "List tasks", tag: "Tasks", secured: true,
		request: []interface{}{new(dto.ListTasksQuery)}, response: new(dto.TaskList), status: http.StatusOK},
	{method: http.MethodPost, path: "/api/tasks", summary: "Create a task", tag: "Tasks", secured: true,
		request: []interface{}{new(dto.CreateTaskRequest)}, response: new(dto.TaskItem), status: http.StatusCreated,
		errors: []int{http.StatusBadRequest}},
	{method: http.MethodGet, path: "/api/tasks/{id}", summary: "Get a task", tag: "Tasks", secured: true,
		request: []interface{}{new(dto.TaskPath)}, response: new(dto.TaskItem), status: http.StatusOK,
		errors: []int{http.StatusNotFound}},
	{method: http.MethodPut, path: "/api/tasks/{id}", summary: "Update a task or move it to another column", tag: "Tasks", secured: true,
		request: []interface{}{new(dto.TaskPath), new(dto.UpdateTaskRequest)}, response: new(dto.TaskItem), status: http.StatusOK,
		errors: []int{http.StatusBadRequest, http.StatusNotFound}},
	{method: http.MethodPatch, path: "/api/tasks/{id}", summary: "Partially update a task", tag: "Tasks", secured: true,
		request: []interface{}{new(dto.TaskPath), new(dto.UpdateTaskRequest)}, response: new(dto.TaskItem), status: http.StatusOK,
		errors: []int{http.StatusBadRequest, http.StatusNotFound}},
	{method: http.MethodDelete, path: "/api/tasks/{id}", summary: "Delete a task", tag: "Tasks", secured: true,
		request: []interface{}{new(dto.TaskPath)}, response: new(dto.MessageResponse), status: http.StatusOK,
		errors: []int{http.StatusNotFound}},
}

// Build renders the API description as JSON.
func Build(version string) ([]byte, error) {
	refl := openapi3.NewReflector()
	refl.SpecSchema().SetTitle("Taskboard API")
	refl.SpecSchema().SetVersion(version)
	refl.SpecSchema().SetDescription("Personal task board: owner-scoped tasks in Pending, In Progress and Completed columns.")
	refl.SpecSchema().SetHTTPBearerTokenSecurity(bearerScheme, "JWT", "Session token from /api/auth/login")

	for _, op := range operations {
		oc, err := refl.NewOperationContext(op.method, op.path)
		if err != nil {
			return nil, err
		}

		oc.SetSummary(op.summary)
		oc.SetTags(op.tag)
		for _, req := range op.request {
			oc.AddReqStructure(req)
		}
		oc.AddRespStructure(op.response, openapi.WithHTTPStatus(op.status))

		errorCodes := op.errors
		if op.secured {
			oc.AddSecurity(bearerScheme)
			errorCodes = append(errorCodes, http.StatusUnauthorized)
		}
		errorCodes = append(errorCodes, http.StatusInternalServerError)
		for _, code := range errorCodes {
			oc.AddRespStructure(new(apierrors.JsonErr), openapi.WithHTTPStatus(code))
		}

		if err := refl.AddOperation(oc); err != nil {
			return nil, err
		}
	}

	return refl.Spec.MarshalJSON()
}
