package paymentValidator

import (
	"regexp"
	"strconv"
	"strings"

	"barasho/middleware"

	"github.com/gofiber/fiber/v2"
)

// Permissive on purpose: learners paste numbers with spaces, dashes and
// country codes straight from their mobile money app.
var phoneRegex = regexp.MustCompile(`^[+]?[\d\s\-()]{8,}$`)

// ValidPhone reports whether the submitted phone number is acceptable
func ValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// SubmitPayment validates a payment submission for a course
func SubmitPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			PhoneNumber string `json:"phone_number"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.PhoneNumber = strings.TrimSpace(reqData.PhoneNumber)

		if reqData.PhoneNumber == "" {
			errors["phone_number"] = "Phone number is required!"
		} else if !ValidPhone(reqData.PhoneNumber) {
			errors["phone_number"] = "Phone number is not valid!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}

// PaymentStatus validates the course id for the payment status lookup
func PaymentStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// ReviewPayment validates the payment id for an admin review action
func ReviewPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		paymentIDStr := strings.TrimSpace(c.Params("id"))
		paymentID, err := strconv.Atoi(paymentIDStr)
		if err != nil || paymentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Payment ID!", nil)
		}

		c.Locals("paymentID", paymentID)
		return c.Next()
	}
}
