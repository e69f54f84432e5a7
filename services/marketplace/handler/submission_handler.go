package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"auction-marketplace/internal/models"
	"auction-marketplace/internal/submission"
	"auction-marketplace/services/marketplace/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// SubmitProductHandler accepts a multipart product submission with its images
func (h *MarketplaceHandler) SubmitProductHandler(c *gin.Context) {
	const handlerName = "SubmitProductHandler"

	var form submission.Form
	if err := c.ShouldBind(&form); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	files, err := readImages(c)
	if err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	sellerID := helpers.UserID(c)
	sub, err := h.catalog.Submit(sellerID, form, files)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"seller_id": sellerID, "title": form.Title})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, sub, "product submitted for review")
	helpers.LogSuccess(handlerName, "product submitted", map[string]any{
		"submission_id": sub.ID,
		"images":        len(sub.Images),
	})
}

func readImages(c *gin.Context) ([]submission.File, error) {
	mf, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("read multipart form: %w", err)
	}

	headers := mf.File["images"]
	files := make([]submission.File, 0, len(headers))
	for _, fh := range headers {
		data, err := readPart(fh)
		if err != nil {
			return nil, fmt.Errorf("read image %s: %w", fh.Filename, err)
		}
		files = append(files, submission.File{Name: fh.Filename, Data: data})
	}
	return files, nil
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	// one byte over the limit is enough for the size rule to reject it
	return io.ReadAll(io.LimitReader(f, submission.MaxImageBytes+1))
}

// ListSubmissionsHandler serves the moderation queue, optionally filtered by ?status=
func (h *MarketplaceHandler) ListSubmissionsHandler(c *gin.Context) {
	params := helpers.ParseListParams(c)
	status := models.SubmissionStatus(strings.ToUpper(params.Status))

	subs := h.catalog.Submissions(status)
	if params.Search != "" {
		subs = filter(subs, func(s models.ProductSubmission) bool {
			return containsFold(s.Title, params.Search) || containsFold(s.SellerName, params.Search)
		})
	}
	utils.JSONResponse(c, http.StatusOK, helpers.Paginate(subs, params), "submissions retrieved successfully")
}

func (h *MarketplaceHandler) ApproveSubmissionHandler(c *gin.Context) {
	const handlerName = "ApproveSubmissionHandler"
	id := c.Param("id")

	auction, err := h.catalog.Approve(id)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"submission_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "submission approved")
	helpers.LogSuccess(handlerName, "submission approved", map[string]any{"submission_id": id, "auction_id": auction.ID})
}

func (h *MarketplaceHandler) RejectSubmissionHandler(c *gin.Context) {
	const handlerName = "RejectSubmissionHandler"
	id := c.Param("id")

	var req helpers.RejectRequest
	if !helpers.Bind(c, handlerName, &req) {
		return
	}

	sub, err := h.catalog.Reject(id, req.Reason)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"submission_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, sub, "submission rejected")
	helpers.LogSuccess(handlerName, "submission rejected", map[string]any{"submission_id": id})
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
