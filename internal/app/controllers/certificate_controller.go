package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/learnify/internal/app/models/dto"
	"github.com/yigit/learnify/internal/app/services"
	"github.com/yigit/learnify/internal/middleware"
)

// CertificateController handles course certificates
type CertificateController struct {
	certificateService services.CertificateService
	logger             zerolog.Logger
}

// NewCertificateController creates a new CertificateController
func NewCertificateController(certificateService services.CertificateService, logger zerolog.Logger) *CertificateController {
	return &CertificateController{
		certificateService: certificateService,
		logger:             logger,
	}
}

// Generate issues the calling student's certificate for a completed course
// @Summary Generate a certificate
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 201 {object} dto.GenerateCertificateResponse
// @Failure 400 {object} dto.ErrorResponse "Course has no chapters, or not all chapters completed"
// @Failure 403 {object} dto.ErrorResponse "Enroll in course first"
// @Failure 409 {object} dto.ErrorResponse "Certificate already generated"
// @Router /courses/{id}/certificate [post]
func (c *CertificateController) Generate(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "id", "Invalid course ID")
	if !ok {
		return
	}

	cert, err := c.certificateService.Generate(ctx.Request.Context(), p, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentID", p.UserID).Int64("courseID", courseID).Str("certificateNo", cert.CertificateNo).Msg("Certificate generated")
	ctx.JSON(http.StatusCreated, dto.GenerateCertificateResponse{
		Message:     "Certificate generated successfully",
		Certificate: dto.NewCertificateResponse(cert),
	})
}

// MyCertificates lists the calling student's certificates, newest first
// @Summary List my certificates
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.MyCertificateResponse
// @Failure 403 {object} dto.ErrorResponse "Only students allowed"
// @Router /certificates/my [get]
func (c *CertificateController) MyCertificates(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	certs, err := c.certificateService.MyCertificates(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMyCertificateListResponse(certs))
}

// Download renders the calling student's certificate for a course as a PDF
// @Summary Download a certificate
// @Tags certificates
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {file} file
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Certificate not found"
// @Router /courses/{id}/certificate/download [get]
func (c *CertificateController) Download(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "id", "Invalid course ID")
	if !ok {
		return
	}

	pdf, err := c.certificateService.RenderPDF(ctx.Request.Context(), p, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "inline; filename=certificate.pdf")
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}
