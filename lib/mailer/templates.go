package mailer

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Templates are pure functions of their inputs. Styling carries the site's
// magenta branding so notifications match the rest of the product.

func emailHeader(title string) string {
	return fmt.Sprintf(`
    <div style="background-color: #c026d3; padding: 20px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0;">%s</h1>
    </div>`, title)
}

func emailFooter() string {
	return fmt.Sprintf(`
    <div style="background-color: #f9f9f9; padding: 15px; text-align: center; font-size: 12px; color: #888;">
      &copy; %d Kridavista. All rights reserved.
    </div>`, time.Now().Year())
}

func wrapEmailBody(title, content string) string {
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; border: 1px solid #e0e0e0; border-radius: 8px; overflow: hidden;">
      %s
      <div style="padding: 30px;">
      %s
      </div>
      %s
    </div>`, emailHeader(title), content, emailFooter())
}

func waitlistWelcomeBody(name string) string {
	content := fmt.Sprintf(`
        <p>Hi <strong>%s</strong>,</p>
        <p>You have successfully joined the <strong>Kridavista Request Access Waitlist</strong>. You are now one step closer to experiencing the future of social gaming.</p>
        <h3 style="color: #c026d3;">What now?</h3>
        <p>We are rolling out access in batches to ensure the best experience for everyone. Keep an eye on your inbox&mdash;we&rsquo;ll let you know as soon as your spot opens up!</p>
        <p>In the meantime, get ready for:</p>
        <ul>
            <li>Seamless video rooms</li>
            <li>Interactive social games</li>
            <li>A community built for connection</li>
        </ul>
        <p>We can't wait to see you inside.</p>
        <br>
        <p>Best,</p>
        <p><strong>The Kridavista Team</strong></p>`, name)
	return wrapEmailBody("You're on the list!", content)
}

func newsletterWelcomeBody(name string) string {
	content := fmt.Sprintf(`
        <p>Hi <strong>%s</strong>,</p>
        <p>Welcome to the <strong>Kridavista Newsletter</strong>! We are thrilled to have you with us.</p>
        <h3 style="color: #c026d3;">What is Kridavista?</h3>
        <p>Kridavista is building the future of virtual connection&mdash;a space where you can hang out, play games, and connect with people in a whole new way.</p>
        <h3 style="color: #c026d3;">What to expect?</h3>
        <ul>
            <li>Exclusive early access news</li>
            <li>Behind-the-scenes updates</li>
            <li>Feature reveals and launch timelines</li>
        </ul>
        <p>Stay tuned! Exciting things are coming your way.</p>
        <br>
        <p>Cheers,</p>
        <p><strong>The Kridavista Team</strong></p>`, name)
	return wrapEmailBody("Welcome to Kridavista!", content)
}

func supportTicketBody(ticketID, name, message string) string {
	content := fmt.Sprintf(`
        <h2 style="color: #c026d3;">Ticket Created: #%s</h2>
        <p>Dear <strong>%s</strong>,</p>
        <p>Thank you for reaching out to Kridavista Support. We have received your query and our team is already looking into it.</p>
        <p>Your Ticket ID is <strong>%s</strong>. Please keep this for future reference.</p>
        <p>We aim to respond to all inquiries within 24 hours.</p>
        <hr style="border: 0; border-top: 1px solid #eee; margin: 20px 0;" />
        <p style="color: #666; font-size: 0.9em;"><strong>Your Message:</strong><br/>%s</p>
        <br>
        <p>Warm regards,</p>
        <p><strong>The Kridavista Team</strong></p>`, ticketID, name, ticketID, message)
	return wrapEmailBody("Kridavista Support", content)
}

func supportAlertBody(ticketID, submissionType, name, email, phone, message string) string {
	if phone == "" {
		phone = "N/A"
	}
	return fmt.Sprintf(`
    <h2>New Support Ticket</h2>
    <ul>
      <li><strong>ID:</strong> %s</li>
      <li><strong>Type:</strong> %s</li>
      <li><strong>Name:</strong> %s</li>
      <li><strong>Email:</strong> %s</li>
      <li><strong>Phone:</strong> %s</li>
      <li><strong>Date:</strong> %s</li>
    </ul>
    <h3>Message:</h3>
    <blockquote style="background: #f9f9f9; padding: 10px; border-left: 4px solid #c026d3;">%s</blockquote>`,
		ticketID, submissionType, name, email, phone, time.Now().UTC().Format(time.RFC3339), message)
}

func careerConfirmationBody(ticketID, name, roleTitle string) string {
	content := fmt.Sprintf(`
        <p>Dear <strong>%s</strong>,</p>
        <p>Thank you for applying to Kridavista for the position of <strong>%s</strong>.</p>
        <p>We have successfully received your application and our team is currently reviewing your profile. We appreciate the time and effort you took to share your credentials with us.</p>
        <p>You can expect to hear back from us within <strong>approximately one week</strong> regarding the next steps.</p>
        <p>Your Application ID is <strong>%s</strong>.</p>
        <p style="font-size: 13px; color: #666;"><em>Note: Please avoid submitting multiple applications for the same role, as this may delay our review process.</em></p>
        <br>
        <p>Warm regards,</p>
        <p><strong>The Kridavista Team</strong></p>`, name, roleTitle, ticketID)
	return wrapEmailBody("Kridavista Careers", content)
}

func careerAlertBody(ticketID, name, email, phone, roleTitle string, fields map[string]string) string {
	if phone == "" {
		phone = "N/A"
	}
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; border: 1px solid #eee; border-radius: 8px;">
        <div style="background: #f4f4f4; padding: 20px; border-bottom: 1px solid #eee;">
            <h2 style="margin: 0; color: #333;">New Career Application</h2>
            <p style="margin: 5px 0 0 0; color: #666;">%s</p>
        </div>
        <div style="padding: 20px;">
            <h3 style="color: #c026d3; border-bottom: 2px solid #c026d3; padding-bottom: 5px; margin-top: 0;">Candidate Details</h3>
            <table style="width: 100%%; border-collapse: collapse;">
                <tr><td style="padding: 8px 0; color: #666; width: 30%%;">Name:</td><td style="padding: 8px 0; font-weight: bold;">%s</td></tr>
                <tr><td style="padding: 8px 0; color: #666;">Email:</td><td style="padding: 8px 0; font-weight: bold;"><a href="mailto:%s" style="color: #c026d3; text-decoration: none;">%s</a></td></tr>
                <tr><td style="padding: 8px 0; color: #666;">Phone:</td><td style="padding: 8px 0;">%s</td></tr>
                <tr><td style="padding: 8px 0; color: #666;">Ticket ID:</td><td style="padding: 8px 0; font-family: monospace;">%s</td></tr>
                <tr><td style="padding: 8px 0; color: #666;">Submitted:</td><td style="padding: 8px 0;">%s</td></tr>
            </table>
            <h3 style="color: #c026d3; border-bottom: 2px solid #c026d3; padding-bottom: 5px; margin-top: 30px;">Application Responses</h3>
            %s
            <div style="margin-top: 30px; background: #fff4fc; padding: 15px; border-radius: 5px; border: 1px solid #ffe6f9;">
                <p style="margin: 0; color: #c026d3; font-weight: bold;">Resume attached as PDF.</p>
            </div>
        </div>
    </div>`,
		roleTitle, name, email, email, phone, ticketID,
		time.Now().UTC().Format(time.RFC3339), answersHTML(fields))
}

// answersHTML renders the dynamic role questions, skipping the base fields
// every application carries.
func answersHTML(fields map[string]string) string {
	baseFields := map[string]bool{
		"name": true, "email": true, "phone": true,
		"roleSlug": true, "roleTitle": true, "resume": true,
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		if !baseFields[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		sb.WriteString(fmt.Sprintf(`
            <div style="margin-bottom: 15px;">
                <p style="margin: 0; font-size: 12px; font-weight: bold; color: #666; text-transform: uppercase;">%s</p>
                <p style="margin: 5px 0 0 0; color: #333; white-space: pre-wrap;">%s</p>
            </div>`, readableKey(key), fields[key]))
	}
	return sb.String()
}

// readableKey turns snake_case form ids into labels ("why_join" -> "Why Join").
func readableKey(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for idx, word := range words {
		if word == "" {
			continue
		}
		words[idx] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
