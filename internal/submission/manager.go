package submission

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"

	"auction-marketplace/internal/apiclient"
	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/utils"
)

const SubmitPath = "/product-submissions/submit"

// Manager sends product submissions for moderation
type Manager struct {
	api *apiclient.Client
}

// NewManager creates a submission manager
func NewManager(api *apiclient.Client) *Manager {
	return &Manager{api: api}
}

// Submit validates the form and images and posts them as multipart/form-data
func (m *Manager) Submit(ctx context.Context, form Form, images *ImageSet) (*models.ProductSubmission, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if images == nil || images.Len() == 0 {
		return nil, &ImageError{Name: "images", Err: marketerrors.ErrNoImages}
	}

	body, contentType, err := encode(form, images.Images())
	if err != nil {
		return nil, err
	}

	var created models.ProductSubmission
	if err := m.api.PostMultipart(ctx, SubmitPath, body, contentType, &created); err != nil {
		return nil, fmt.Errorf("submit product: %w", err)
	}

	utils.Info("product submitted", map[string]any{
		"submission_id": created.ID,
		"title":         form.Title,
		"images":        images.Len(),
	})
	return &created, nil
}

func encode(form Form, images []Image) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, kv := range form.fields() {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", kv[0], err)
		}
	}

	for _, img := range images {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename=%q`, img.Name))
		h.Set("Content-Type", img.MIME)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create image part %s: %w", img.Name, err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, "", fmt.Errorf("write image %s: %w", img.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
