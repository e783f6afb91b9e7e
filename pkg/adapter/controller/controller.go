package controller

// Controller struct holds the controller of the entire app
type Controller struct {
	Keyword    interface{ Keyword }
	Collect    interface{ Collect }
	Job        interface{ Job }
	Credential interface{ Credential }
	CronJob    interface{ CronJob }
}
