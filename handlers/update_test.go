package handlers

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"farmsight/models"
)

func TestApplyFieldUpdateKeepsIdentity(t *testing.T) {
	stored := models.FieldProfile{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Name:         "North Plot",
		SizeHectares: 2.5,
		SoilType:     "Loamy",
	}
	wantID, wantOwner := stored.ID, stored.OwnerID

	// Body tries to retarget the save at another row and another owner.
	body := fmt.Sprintf(`{"id":%q,"ownerId":%q,"name":"Renamed","sizeHectares":3.0,"soilType":"Clay"}`,
		uuid.New(), uuid.New())
	r := httptest.NewRequest("PUT", "/api/v1/fields/"+wantID.String(), strings.NewReader(body))

	if err := applyFieldUpdate(r, &stored); err != nil {
		t.Fatalf("applyFieldUpdate() error = %v", err)
	}
	if stored.ID != wantID {
		t.Errorf("ID = %s, want %s", stored.ID, wantID)
	}
	if stored.OwnerID != wantOwner {
		t.Errorf("OwnerID = %s, want %s", stored.OwnerID, wantOwner)
	}
	if stored.Name != "Renamed" || stored.SoilType != "Clay" {
		t.Errorf("mutable fields not applied: %+v", stored)
	}
}

func TestApplyFieldUpdateBadJSON(t *testing.T) {
	stored := models.FieldProfile{ID: uuid.New()}
	r := httptest.NewRequest("PUT", "/api/v1/fields/x", strings.NewReader("{not json"))
	if err := applyFieldUpdate(r, &stored); err == nil {
		t.Error("applyFieldUpdate() expected error for malformed body")
	}
}

func TestApplyRecordUpdateKeepsIdentity(t *testing.T) {
	stored := models.CropRecord{
		ID:              uuid.New(),
		UploadedBy:      uuid.New(),
		FieldName:       "North Plot",
		State:           "Punjab",
		CropType:        "Wheat",
		YieldPerHectare: 4.5,
	}
	wantID, wantUploader := stored.ID, stored.UploadedBy

	body := fmt.Sprintf(`{"id":%q,"uploadedBy":%q,"fieldName":"South Plot","yieldPerHectare":5.0}`,
		uuid.New(), uuid.New())
	r := httptest.NewRequest("PUT", "/api/v1/records/"+wantID.String(), strings.NewReader(body))

	if err := applyRecordUpdate(r, &stored); err != nil {
		t.Fatalf("applyRecordUpdate() error = %v", err)
	}
	if stored.ID != wantID {
		t.Errorf("ID = %s, want %s", stored.ID, wantID)
	}
	if stored.UploadedBy != wantUploader {
		t.Errorf("UploadedBy = %s, want %s", stored.UploadedBy, wantUploader)
	}
	if stored.FieldName != "South Plot" || stored.YieldPerHectare != 5.0 {
		t.Errorf("mutable fields not applied: %+v", stored)
	}
}
