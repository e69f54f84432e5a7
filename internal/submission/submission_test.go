package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"auction-marketplace/internal/apiclient"
	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/session"
	"auction-marketplace/internal/validation"

	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func pngOfSize(n int) []byte {
	data := make([]byte, n)
	copy(data, pngHeader)
	return data
}

func validForm() Form {
	return Form{
		Title:           "Leica M6 camera",
		Description:     "Classic rangefinder in great working condition.",
		CategoryID:      "cameras",
		Condition:       ConditionLikeNew,
		StartingPrice:   500,
		ReservePrice:    800,
		AuctionDuration: 7,
		SellerName:      "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "+1 555 010 2000",
	}
}

func TestImageSet_SixImagesKeepsFive(t *testing.T) {
	t.Parallel()

	set := NewImageSet()
	var files []File
	for i := range 6 {
		files = append(files, File{Name: fmt.Sprintf("photo-%d.png", i), Data: pngOfSize(1024 + i)})
	}

	errs := set.AddAll(files...)
	require.Equal(t, MaxImages, set.Len())
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], marketerrors.ErrTooManyImages)
	require.Equal(t, "photo-5.png: you can upload at most 5 images", marketerrors.UserMessage(errs[0]))
}

func TestImageSet_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		file        string
		data        []byte
		expectedErr error
		message     string
	}{
		{name: "too_large", file: "big.png", data: pngOfSize(MaxImageBytes + 1), expectedErr: marketerrors.ErrImageTooLarge, message: "big.png: file is larger than 5 MB"},
		{name: "not_an_image", file: "notes.png", data: []byte("%PDF-1.7 not really a png"), expectedErr: marketerrors.ErrImageType, message: "notes.png: only JPEG, PNG, GIF and WebP images are allowed"},
		{name: "exactly_at_cap", file: "ok.png", data: pngOfSize(MaxImageBytes)},
		{name: "gif", file: "anim.gif", data: []byte("GIF89a\x01\x00\x01\x00")},
		{name: "jpeg", file: "shot.jpg", data: []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewImageSet()
			err := set.Add(tt.file, tt.data)
			if tt.expectedErr == nil {
				require.NoError(t, err)
				require.Equal(t, 1, set.Len())
				return
			}
			require.ErrorIs(t, err, tt.expectedErr)
			require.Equal(t, tt.message, marketerrors.UserMessage(err))
			require.Zero(t, set.Len())
		})
	}
}

func TestImageSet_DeduplicatesByNameAndSize(t *testing.T) {
	t.Parallel()

	set := NewImageSet()
	require.NoError(t, set.Add("a.png", pngOfSize(100)))
	require.ErrorIs(t, set.Add("a.png", pngOfSize(100)), marketerrors.ErrDuplicateImage)
	require.NoError(t, set.Add("a.png", pngOfSize(101)))
	require.NoError(t, set.Add("b.png", pngOfSize(100)))
	require.Equal(t, 3, set.Len())

	require.True(t, set.Remove("a.png"))
	require.False(t, set.Remove("missing.png"))
	require.Equal(t, 2, set.Len())
}

func TestForm_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(f *Form)
		field  string
	}{
		{name: "valid", mutate: func(f *Form) {}},
		{name: "short_title", mutate: func(f *Form) { f.Title = "Cam" }, field: "title"},
		{name: "title_whitespace_trimmed", mutate: func(f *Form) { f.Title = "   Cam   " }, field: "title"},
		{name: "short_description", mutate: func(f *Form) { f.Description = "too short" }, field: "description"},
		{name: "bad_condition", mutate: func(f *Form) { f.Condition = "broken" }, field: "condition"},
		{name: "zero_price", mutate: func(f *Form) { f.StartingPrice = 0 }, field: "startingPrice"},
		{name: "price_too_high", mutate: func(f *Form) { f.StartingPrice = 10_000_001; f.ReservePrice = 0 }, field: "startingPrice"},
		{name: "reserve_below_start", mutate: func(f *Form) { f.ReservePrice = 100 }, field: "reservePrice"},
		{name: "buy_now_below_start", mutate: func(f *Form) { f.BuyNowPrice = 499 }, field: "buyNowPrice"},
		{name: "bad_duration", mutate: func(f *Form) { f.AuctionDuration = 2 }, field: "auctionDuration"},
		{name: "bad_email", mutate: func(f *Form) { f.Email = "jane@" }, field: "email"},
		{name: "bad_phone", mutate: func(f *Form) { f.Phone = "phone" }, field: "phone"},
		{name: "missing_category", mutate: func(f *Form) { f.CategoryID = "" }, field: "categoryId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			err := f.Validate()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			require.True(t, errs.Has(tt.field), "expected %s in %v", tt.field, errs)
		})
	}
}

func TestProgress(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, Progress(Form{}, nil))

	images := NewImageSet()
	require.Equal(t, 90, Progress(validForm(), images))

	require.NoError(t, images.Add("a.png", pngOfSize(10)))
	require.Equal(t, 100, Progress(validForm(), images))
}

func TestManager_Submit(t *testing.T) {
	var gotFields map[string]string
	var gotFiles []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api"+SubmitPath {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotFields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			gotFields[k] = v[0]
		}
		for _, fh := range r.MultipartForm.File["images"] {
			gotFiles = append(gotFiles, fh.Filename+"|"+fh.Header.Get("Content-Type"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "submitted for review",
			"data":    models.ProductSubmission{ID: "s1", Title: gotFields["title"], Status: models.SubmissionPending},
		})
	}))
	defer srv.Close()

	api, err := apiclient.New(srv.URL+"/api", session.NewMemoryStore())
	require.NoError(t, err)
	m := NewManager(api)

	_, err = m.Submit(context.Background(), validForm(), NewImageSet())
	require.ErrorIs(t, err, marketerrors.ErrNoImages)
	require.Nil(t, gotFields)

	images := NewImageSet()
	require.NoError(t, images.Add("front.png", pngOfSize(64)))
	require.NoError(t, images.Add("back.png", pngOfSize(65)))

	created, err := m.Submit(context.Background(), validForm(), images)
	require.NoError(t, err)
	require.Equal(t, "s1", created.ID)
	require.Equal(t, models.SubmissionPending, created.Status)

	require.Equal(t, "Leica M6 camera", gotFields["title"])
	require.Equal(t, "500.00", gotFields["startingPrice"])
	require.Equal(t, "800.00", gotFields["reservePrice"])
	require.Equal(t, "7", gotFields["auctionDuration"])
	require.NotContains(t, gotFields, "buyNowPrice")
	require.Equal(t, []string{"front.png|image/png", "back.png|image/png"}, gotFiles)
}

func TestEncode_IsReplayable(t *testing.T) {
	t.Parallel()

	body, contentType, err := encode(validForm(), []Image{{Name: "a.png", MIME: "image/png", Data: pngOfSize(8)}})
	require.NoError(t, err)
	require.Contains(t, contentType, "multipart/form-data; boundary=")
	require.True(t, bytes.Contains(body, []byte(`filename="a.png"`)))
}
