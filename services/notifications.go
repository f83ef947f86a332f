package services

import (
	"fmt"
	"log"

	"github.com/mohamedbgr31/luxury-car-rental-sub001/models"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/storage"

	"github.com/mohamedbgr31/luxury-car-rental-sub001/utils"
)

// NotificationService writes in-app inbox rows. There is no push delivery;
// the back office polls its inbox.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyAdminsNewRequest fans a new-request notification out to every admin.
func (ns *NotificationService) NotifyAdminsNewRequest(request *models.RentalRequest) {
	var admins []models.User
	if err := storage.DB.Where("role IN ?", []string{"admin", "super_admin"}).Find(&admins).Error; err != nil {
		log.Printf("notify admins: failed to load admin users: %v", err)
		return
	}

	title := "New Rental Request"
	if request.Urgent {
		title = "Urgent Rental Request"
	}
	message := fmt.Sprintf("%s requested %s from %s to %s",
		request.Name, request.CarName,
		request.DateFrom.In(utils.RentalZone).Format("Jan 2, 2006"),
		request.DateTo.In(utils.RentalZone).Format("Jan 2, 2006"))

	for _, admin := range admins {
		notification := models.Notification{
			UserID:  admin.ID,
			Title:   title,
			Message: message,
			Type:    "request_submitted",
			RefID:   request.ID,
			RefType: "rental_request",
		}
		storage.DB.Create(&notification)
	}
}

// NotifyRequestStatus tells the requesting user about an accept/reject. Legacy
// requests without a linked user have nobody to notify.
func (ns *NotificationService) NotifyRequestStatus(request *models.RentalRequest) {
	if request.UserID == nil {
		return
	}

	notification := models.Notification{
		UserID:  *request.UserID,
		Title:   "Rental Request Updated",
		Message: fmt.Sprintf("Your request for %s has been %s", request.CarName, request.Status),
		Type:    "request_status",
		RefID:   request.ID,
		RefType: "rental_request",
	}
	storage.DB.Create(&notification)
}
