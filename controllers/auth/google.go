package authController

import (
	"log"
	"net/url"

	"barasho/config"
	"barasho/database"
	"barasho/middleware"
	"barasho/models"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// GoogleLogin returns the Google consent URL the client should redirect to
func GoogleLogin(c *fiber.Ctx) error {
	if config.AppConfig.GoogleClientID == "" {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Google sign-in is not configured!", nil)
	}

	params := url.Values{}
	params.Set("client_id", config.AppConfig.GoogleClientID)
	params.Set("redirect_uri", config.AppConfig.GoogleRedirectURL)
	params.Set("response_type", "code")
	params.Set("scope", "openid email profile")
	params.Set("access_type", "online")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Redirect to Google to continue.", fiber.Map{
		"url": googleAuthURL + "?" + params.Encode(),
	})
}

// GoogleCallback exchanges the authorization code, fetches the Google
// profile and signs the user in, creating the account on first login.
func GoogleCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing authorization code!", nil)
	}

	client := resty.New()

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	resp, err := client.R().
		SetFormData(map[string]string{
			"code":          code,
			"client_id":     config.AppConfig.GoogleClientID,
			"client_secret": config.AppConfig.GoogleClientSecret,
			"redirect_uri":  config.AppConfig.GoogleRedirectURL,
			"grant_type":    "authorization_code",
		}).
		SetResult(&tokenResp).
		Post(googleTokenURL)
	if err != nil || resp.StatusCode() != 200 || tokenResp.AccessToken == "" {
		log.Printf("Google token exchange failed: %v %s", err, resp.String())
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Google sign-in failed!", nil)
	}

	var profile struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	resp, err = client.R().
		SetAuthToken(tokenResp.AccessToken).
		SetResult(&profile).
		Get(googleUserinfoURL)
	if err != nil || resp.StatusCode() != 200 || profile.Email == "" {
		log.Printf("Google userinfo fetch failed: %v %s", err, resp.String())
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Google sign-in failed!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", profile.Email, false).First(&user).Error; err != nil {
		user = models.User{
			Name:     profile.Name,
			Email:    profile.Email,
			GoogleID: profile.ID,
			Role:     models.RoleUser,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Error creating Google user: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign in with Google!", nil)
		}
	} else if user.GoogleID == "" {
		user.GoogleID = profile.ID
		db.Save(&user)
	}

	user.Role = models.NormalizeRole(user.Role)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"user":  user,
		"token": token,
	})
}
