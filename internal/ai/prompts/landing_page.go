package prompts

import "fmt"

// GetLandingPageSystemPrompt returns the structural requirements every
// generated document must satisfy.
func GetLandingPageSystemPrompt() string {
	return `You are a professional web developer specializing in creating modern, responsive landing pages.
When generating landing pages, always:
1. Provide complete HTML code with proper HTML5 structure
2. Include embedded CSS within a <style> tag in the head section
3. Use modern CSS features like flexbox or grid for layout
4. Make the design responsive and mobile-friendly
5. Include common sections like hero, features, about, and contact
6. Use semantic HTML tags
7. Add appropriate meta tags and viewport settings
8. Include placeholder images using placeholder.com or similar services
9. Use a clean, modern color scheme
10. Add hover effects and smooth transitions

Format your response as a complete HTML document that can be directly used.`
}

// GetLandingPageUserPrompt embeds the description and, when an uploaded image
// is available, directs the model to place it in the hero section.
func GetLandingPageUserPrompt(description, imagePath string) string {
	imageInfo := ""
	if imagePath != "" {
		imageInfo = fmt.Sprintf(`
The user has provided an image for the landing page.
The image is located at: %s
Please incorporate this image into the design, preferably in the hero section.
Make sure to use proper image optimization and responsive design techniques.`, imagePath)
	}
	return fmt.Sprintf("Generate a complete landing page HTML template with embedded CSS based on this description: %s%s", description, imageInfo)
}
