package memdb

import "backoffice-api/internal/entity"

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f

	return &v
}

func cloneClient(c entity.Client) entity.Client {
	ids := make([]string, len(c.ContractIds))
	copy(ids, c.ContractIds)
	c.ContractIds = ids

	return c
}

func cloneContract(c entity.Contract) entity.Contract {
	c.MonthlyValue = cloneFloat(c.MonthlyValue)

	return c
}

func cloneConsultant(c entity.Consultant) entity.Consultant {
	c.PaymentDetails.MonthlySalary = cloneFloat(c.PaymentDetails.MonthlySalary)
	c.PaymentDetails.HourlyRate = cloneFloat(c.PaymentDetails.HourlyRate)

	return c
}

func cloneService(s entity.Service) entity.Service {
	return s
}

func cloneLogEntry(e entity.LogEntry) entity.LogEntry {
	comments := make([]entity.LogComment, len(e.Comments))
	copy(comments, e.Comments)
	e.Comments = comments

	return e
}

func cloneAnnouncement(a entity.Announcement) entity.Announcement {
	return a
}
