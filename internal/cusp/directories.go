package cusp

import (
	"context"
	"net/http"
	"strconv"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/models"
	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/upload"
)

// DirectoryForm is the edit-surface shape for a directory entry. The API
// speaks a different dialect (location, p_name, p_email, p_photo); the
// remapping is declared once here, in both directions.
type DirectoryForm struct {
	PlaceName     string
	PlaceLocation string
	LocationURL   string
	PersonName    string
	PersonEmail   string
	Status        *string
	Image         *upload.Attachment
}

func (f DirectoryForm) fields() map[string]string {
	fields := map[string]string{
		"place_name":   f.PlaceName,
		"location":     f.PlaceLocation,
		"location_url": f.LocationURL,
		"p_name":       f.PersonName,
		"p_email":      f.PersonEmail,
	}
	if f.Status != nil {
		fields["status"] = *f.Status
	}
	return fields
}

func (f DirectoryForm) attachments() []*upload.Attachment {
	if f.Image == nil {
		return nil
	}
	image := *f.Image
	image.Field = "p_photo"
	return []*upload.Attachment{&image}
}

// DirectoryFormFromRecord maps the API field names back onto the edit surface.
func DirectoryFormFromRecord(dir models.Directory) DirectoryForm {
	status := dir.Status
	return DirectoryForm{
		PlaceName:     dir.PlaceName,
		PlaceLocation: dir.Location,
		LocationURL:   dir.LocationURL,
		PersonName:    dir.PersonName,
		PersonEmail:   dir.PersonEmail,
		Status:        &status,
	}
}

func (c *Client) ListDirectories(ctx context.Context) ([]models.Directory, error) {
	var dirs []models.Directory
	if err := c.getList(ctx, "/directory/", &dirs); err != nil {
		return nil, err
	}
	return dirs, nil
}

func (c *Client) GetDirectory(ctx context.Context, id int64) (*models.Directory, error) {
	var dir models.Directory
	if err := c.getJSON(ctx, "/directory/"+strconv.FormatInt(id, 10), &dir); err != nil {
		return nil, err
	}
	return &dir, nil
}

func (c *Client) CreateDirectory(ctx context.Context, form DirectoryForm) error {
	return c.sendForm(ctx, http.MethodPost, "/directory", form.fields(), form.attachments(), nil)
}

func (c *Client) UpdateDirectory(ctx context.Context, id int64, form DirectoryForm) error {
	return c.sendForm(ctx, http.MethodPatch, "/directory/"+strconv.FormatInt(id, 10), form.fields(), form.attachments(), nil)
}

func (c *Client) DeleteDirectory(ctx context.Context, id int64) error {
	return c.deleteJSON(ctx, "/directory/"+strconv.FormatInt(id, 10))
}
