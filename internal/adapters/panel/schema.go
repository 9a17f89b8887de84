package panel

type listEnvelope[T any] struct {
	Data []struct {
		Attributes T `json:"attributes"`
	} `json:"data"`
}

type objectEnvelope[T any] struct {
	Attributes T `json:"attributes"`
}

type allocationAttributes struct {
	ID       int    `json:"id"`
	IP       string `json:"ip"`
	Port     int    `json:"port"`
	Assigned bool   `json:"assigned"`
}

type serverAttributes struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Limits     struct {
		Memory int `json:"memory"`
		CPU    int `json:"cpu"`
		Disk   int `json:"disk"`
	} `json:"limits"`
}

type userAttributes struct {
	ID int `json:"id"`
}

type createUserRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password,omitempty"`
}

type clientServerAttributes struct {
	Name        string `json:"name"`
	Identifier  string `json:"identifier"`
	SFTPDetails struct {
		IP   string `json:"ip"`
		Port int    `json:"port"`
	} `json:"sftp_details"`
}

type powerRequest struct {
	Signal string `json:"signal"`
}
