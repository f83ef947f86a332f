package routes

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/mohamedbgr31/luxury-car-rental-sub001/models"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/storage"
	"github.com/mohamedbgr31/luxury-car-rental-sub001/utils"

	"github.com/kataras/iris/v12"
)

type exportJob struct {
	ID        string `json:"id"`
	Resource  string `json:"resource"`
	Status    string `json:"status"` // pending, processing, done, failed
	CreatedAt int64  `json:"created_at"`

	csv []byte
}

var (
	exportJobs   = map[string]*exportJob{}
	exportJobsMu sync.Mutex
)

// POST /admin/export { resource: "cars" | "requests" }
//
// Jobs run in the background and keep the rendered CSV in memory until the
// process restarts. Good enough for a back office with a handful of admins.
func AdminCreateExport(ctx iris.Context) {
	var body struct {
		Resource string `json:"resource"`
	}
	if err := ctx.ReadJSON(&body); err != nil || (body.Resource != "cars" && body.Resource != "requests") {
		ctx.StatusCode(http.StatusUnprocessableEntity)
		ctx.JSON(iris.Map{"error": "invalid_payload", "message": "resource must be cars or requests"})
		return
	}

	id := time.Now().Format("20060102150405.000000")
	job := &exportJob{ID: id, Resource: body.Resource, Status: "pending", CreatedAt: time.Now().Unix()}
	exportJobsMu.Lock()
	exportJobs[id] = job
	exportJobsMu.Unlock()

	go runExport(job)

	ctx.JSON(iris.Map{"data": iris.Map{"id": id, "status": "pending"}})
}

func runExport(job *exportJob) {
	setStatus := func(status string, payload []byte) {
		exportJobsMu.Lock()
		job.Status = status
		job.csv = payload
		exportJobsMu.Unlock()
	}
	setStatus("processing", nil)

	var payload []byte
	var err error
	switch job.Resource {
	case "cars":
		payload, err = renderCarsCSV()
	case "requests":
		payload, err = renderRequestsCSV()
	}
	if err != nil {
		setStatus("failed", nil)
		return
	}
	setStatus("done", payload)
}

func renderCarsCSV() ([]byte, error) {
	var cars []models.Car
	if err := storage.DB.Order("id").Find(&cars).Error; err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"id", "brand", "model", "title", "category", "price_daily", "price_weekly", "price_monthly", "currency", "featured", "active"})
	for i := range cars {
		c := &cars[i]
		active := "true"
		if c.IsActive != nil && !*c.IsActive {
			active = "false"
		}
		w.Write([]string{
			strconv.FormatUint(uint64(c.ID), 10),
			c.Brand, c.CarModel, c.Title, c.Category,
			c.PriceDaily, c.PriceWeekly, c.PriceMonthly, c.Currency,
			strconv.FormatBool(c.Featured), active,
		})
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func renderRequestsCSV() ([]byte, error) {
	var requests []models.RentalRequest
	if err := storage.DB.Order("id").Find(&requests).Error; err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"id", "name", "contact", "car", "date_from", "date_to", "total_days", "rental_type", "total_price", "status", "urgent", "created_at"})
	for i := range requests {
		r := &requests[i]
		carName := r.CarName
		if r.CarID != nil && carName == "" {
			carName = "#" + strconv.FormatUint(uint64(*r.CarID), 10)
		}
		w.Write([]string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Name, r.Contact, carName,
			r.DateFrom.Format(utils.DayFormat), r.DateTo.Format(utils.DayFormat),
			strconv.Itoa(r.TotalDays), r.RentalType, r.TotalPrice, r.Status,
			strconv.FormatBool(r.Urgent),
			r.CreatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// GET /admin/export/:id
func AdminGetExport(ctx iris.Context) {
	id := ctx.Params().GetString("id")
	exportJobsMu.Lock()
	job, ok := exportJobs[id]
	var snapshot exportJob
	if ok {
		snapshot = *job
	}
	exportJobsMu.Unlock()
	if !ok {
		ctx.StatusCode(http.StatusNotFound)
		ctx.JSON(iris.Map{"error": "not_found", "message": "job not found"})
		return
	}
	ctx.JSON(iris.Map{"data": &snapshot})
}

// GET /admin/export/:id/download
func AdminDownloadExport(ctx iris.Context) {
	id := ctx.Params().GetString("id")
	exportJobsMu.Lock()
	job, ok := exportJobs[id]
	var payload []byte
	var status, resource string
	if ok {
		payload = job.csv
		status = job.Status
		resource = job.Resource
	}
	exportJobsMu.Unlock()
	if !ok || status != "done" {
		ctx.StatusCode(http.StatusNotFound)
		ctx.JSON(iris.Map{"error": "not_found", "message": "export not ready"})
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+resource+"-"+id+".csv")
	ctx.ContentType("text/csv")
	ctx.Write(payload)
}
