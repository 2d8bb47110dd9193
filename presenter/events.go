package presenter

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

type Incremented struct {
	Value int `json:"value"`
}

func (Incremented) TypeName() string {
	return "counter:incremented"
}

type Decremented struct {
	Value int `json:"value"`
}

func (Decremented) TypeName() string {
	return "counter:decremented"
}

type WasReset struct {
	Value int `json:"value"`
}

func (WasReset) TypeName() string {
	return "counter:reset"
}

type LimitReached struct {
	Direction Direction `json:"direction"`
	Value     int       `json:"value"`
}

func (LimitReached) TypeName() string {
	return "counter:limit-reached"
}
