package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/customer-api/internal/api/shared"
	"github.com/phrazzld/customer-api/internal/service"
)

const (
	defaultListLimit  = 50
	defaultListOffset = 0
)

// CustomerHandler holds dependencies for customer API handlers.
type CustomerHandler struct {
	service   service.CustomerService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewCustomerHandler creates a new CustomerHandler with its dependencies.
func NewCustomerHandler(svc service.CustomerService, logger *slog.Logger) *CustomerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CustomerHandler{
		service:   svc,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "customer_handler")),
	}
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	customer, err := h.service.CreateCustomer(r.Context(), req.ToInput())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, customer)
}

// List handles GET /api/customers with optional limit and offset query
// parameters.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := h.queryInt(w, r, "limit", defaultListLimit,
		"Limit must be between 1 and 100")
	if !ok {
		return
	}
	offset, ok := h.queryInt(w, r, "offset", defaultListOffset,
		"Offset must be non-negative")
	if !ok {
		return
	}

	customers, err := h.service.GetAllCustomers(r.Context(), limit, offset)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithList(w, r, customers, shared.Pagination{
		Limit:  limit,
		Offset: offset,
		Count:  len(customers),
	})
}

// GetByID handles GET /api/customers/{id}.
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	customer, err := h.service.GetCustomerByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, customer)
}

// Update handles PUT /api/customers/{id}. Absent fields keep their stored
// values.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateCustomerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	customer, err := h.service.UpdateCustomer(r.Context(), id, req.ToInput())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, customer)
}

// Delete handles DELETE /api/customers/{id}. A successful delete responds
// 200 with an empty body.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteCustomer(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// queryInt parses an optional integer query parameter, falling back to the
// default when absent. A non-numeric value is rejected with the same
// message the range check would produce.
func (h *CustomerHandler) queryInt(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	fallback int,
	badValueMessage string,
) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, badValueMessage)
		return 0, false
	}
	return value, true
}

// respondServiceError translates service-layer errors into the HTTP
// error envelope, logging full detail only for server faults.
func (h *CustomerHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	if status >= http.StatusInternalServerError {
		shared.RespondWithErrorAndLog(w, r, status, message, err)
		return
	}
	shared.RespondWithError(w, r, status, message)
}

// validationMessage converts the first structural validation failure into
// a client-facing message. Field names are reported with their JSON
// spellings.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	field := jsonFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email format"
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// jsonFieldName maps the exported struct field names onto the JSON
// spellings used in request payloads and error messages.
func jsonFieldName(structField string) string {
	switch structField {
	case "FirstName":
		return "First name"
	case "LastName":
		return "Last name"
	case "Email":
		return "Email"
	case "PhoneNumber":
		return "Phone number"
	case "Address":
		return "Address"
	case "City":
		return "City"
	case "State":
		return "State"
	case "Country":
		return "Country"
	default:
		return structField
	}
}
