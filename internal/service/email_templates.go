package service

import "fmt"

func welcomeEmailTemplate(name, dashboardURL, appName string) (string, string) {
	subject := fmt.Sprintf("Welcome to %s!", appName)
	body := fmt.Sprintf(`Hi %s,

Your account is ready. Create your first board and start adding todos:
%s

If you have questions, reach out to our support team.

Best,
The %s Team`, name, dashboardURL, appName)

	return subject, body
}
