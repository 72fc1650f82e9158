package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/employee_service/internal/domain"
	"github.com/locvowork/employee_service/internal/export"
	"github.com/locvowork/employee_service/internal/service"
)

type EmployeeHandler struct {
	svc      service.EmployeeService
	exporter *export.Exporter
}

func NewEmployeeHandler(svc service.EmployeeService, exporter *export.Exporter) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, exporter: exporter}
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid employee id %q", domain.ErrInvalidInput, c.Param("id"))
	}
	return id, nil
}

func bindEmployee(c echo.Context) (domain.EmployeeDTO, error) {
	var req domain.EmployeeDTO
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}
	return req, nil
}

// writeEntity renders a ResponseEntity. Created entities also get a Location header.
func writeEntity(c echo.Context, resp domain.ResponseEntity) error {
	if resp.Body == nil {
		return c.NoContent(resp.Status)
	}
	if resp.Status == http.StatusCreated {
		if href, ok := resp.Body.Links.Href(domain.RelSelf); ok {
			c.Response().Header().Set(echo.HeaderLocation, href)
		}
	}
	return c.JSON(resp.Status, resp.Body)
}

func (h *EmployeeHandler) ListHandler(c echo.Context) error {
	employees, err := h.svc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) GetHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	resp, err := h.svc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeEntity(c, resp)
}

// GetByEmailHandler decodes the path segment itself; echo leaves
// percent-escapes in params when the request path carries any.
func (h *EmployeeHandler) GetByEmailHandler(c echo.Context) error {
	email, err := url.PathUnescape(c.Param("email"))
	if err != nil {
		return fmt.Errorf("%w: invalid email %q", domain.ErrInvalidInput, c.Param("email"))
	}

	emp, err := h.svc.FindByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emp)
}

func (h *EmployeeHandler) SearchHandler(c echo.Context) error {
	result, err := h.svc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *EmployeeHandler) CreateHandler(c echo.Context) error {
	req, err := bindEmployee(c)
	if err != nil {
		return err
	}

	resp, err := h.svc.NewEmployee(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return writeEntity(c, resp)
}

func (h *EmployeeHandler) UpdateHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	req, err := bindEmployee(c)
	if err != nil {
		return err
	}

	resp, err := h.svc.Save(c.Request().Context(), req, id)
	if err != nil {
		return err
	}
	return writeEntity(c, resp)
}

func (h *EmployeeHandler) DeleteHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	resp, err := h.svc.DeleteByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return writeEntity(c, resp)
}

// ExportHandler downloads every employee as an XLSX workbook.
func (h *EmployeeHandler) ExportHandler(c echo.Context) error {
	all, err := h.svc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	rows := make([]domain.EmployeeDTO, 0, len(all.Embedded.Employees))
	for _, m := range all.Embedded.Employees {
		rows = append(rows, m.EmployeeDTO)
	}

	var buf bytes.Buffer
	if err := h.exporter.Write(&buf, rows); err != nil {
		return fmt.Errorf("failed to export employees: %w", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="employees.xlsx"`)
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
