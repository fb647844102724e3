package http

import "github.com/labstack/echo/v4"

// Routes groups every handler mounted by the API server.
type Routes struct {
	Health       *Handler
	Stakeholders *StakeholderHandler
	Requests     *RequestHandler
	Uploads      *UploadHandler
	Reports      *ReportHandler
}

func (r Routes) Register(e *echo.Echo) {
	e.GET("/health", r.Health.Health)

	api := e.Group("/api")

	api.GET("/stakeholders", r.Stakeholders.List)
	api.POST("/stakeholders", r.Stakeholders.Create)
	api.PUT("/stakeholders/:id", r.Stakeholders.Update)
	api.DELETE("/stakeholders/:id", r.Stakeholders.Delete)

	api.GET("/requests", r.Requests.List)
	api.POST("/requests", r.Requests.Create)
	api.PUT("/requests/:id", r.Requests.Patch)
	api.DELETE("/requests/:id", r.Requests.Delete)
	api.POST("/requests/upload", r.Uploads.Requests)
	api.GET("/requests/download", r.Requests.Download)
	api.GET("/requests/template", r.Uploads.RequestTemplate)

	api.GET("/request-details/:id", r.Requests.Details)
	api.PUT("/update-request/:id", r.Requests.UpdateDetails)
	api.GET("/update-request/download", r.Requests.DownloadUpdates)
	api.GET("/update-request/template", r.Uploads.UpdateTemplate)
	api.POST("/update-request/bulk-upload", r.Uploads.Updates)

	api.POST("/actual-manhours/upload", r.Uploads.ManHours)
	api.GET("/actual-manhours", r.Reports.ManHours)
	api.GET("/actual-manhours/download", r.Reports.DownloadManHours)
	api.GET("/actual-manhours/template", r.Uploads.ManHourTemplate)

	api.GET("/report", r.Reports.Report)
	api.GET("/report/download", r.Reports.Download)
	api.GET("/report/manhours-breakup/:id", r.Reports.Breakup)

	api.GET("/dashboard/data", r.Reports.Dashboard)
}
