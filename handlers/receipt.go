package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"law_office_app_go/config"
	"law_office_app_go/forms"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// GenerateReceiptHandler validates the receipt form and streams the rendered
// PDF back as a download named after the reference number
func GenerateReceiptHandler(c echo.Context) error {
	form := forms.New(forms.ReceiptSchema())
	form.SetField("referenceno", forms.Text(c.FormValue("referenceno")))
	form.SetField("clientname", forms.Text(c.FormValue("clientname")))
	form.SetField("date", forms.Text(c.FormValue("date")))
	form.SetField("reason", forms.Text(c.FormValue("reason")))
	form.SetField("amountinwords", forms.Text(c.FormValue("amountinwords")))
	form.SetField("modeofpayment", forms.Text(c.FormValue("modeofpayment")))
	form.SetField("receivedby", forms.Text(c.FormValue("receivedby")))
	if amount, err := strconv.ParseFloat(c.FormValue("amount"), 64); err == nil {
		form.SetField("amount", forms.Number(amount))
	} else {
		form.SetField("amount", forms.Number(0))
	}

	var pdf []byte
	var fileName string

	_, err := form.Submit(func(vals forms.Values) error {
		cfg, _ := c.Get("config").(*config.Config)
		data := services.ReceiptData{
			ReferenceNo:   vals["referenceno"].Text(),
			ClientName:    vals["clientname"].Text(),
			Date:          vals["date"].Text(),
			Reason:        vals["reason"].Text(),
			Amount:        vals["amount"].Number(),
			AmountInWords: vals["amountinwords"].Text(),
			ModeOfPayment: vals["modeofpayment"].Text(),
			ReceivedBy:    vals["receivedby"].Text(),
		}
		if cfg != nil {
			data.OfficeName = cfg.OfficeName
			data.OfficeAddress = cfg.OfficeAddress
		}

		buf, genErr := services.GenerateReceiptPDF(c.Request().Context(), data)
		if genErr != nil {
			return genErr
		}
		pdf = buf
		fileName = services.ReceiptFileName(data.ReferenceNo)
		return nil
	})
	if errors.Is(err, forms.ErrInvalid) {
		return respondInvalid(c, form)
	}
	if err != nil {
		return respondFailure(c)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
