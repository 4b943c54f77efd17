package physics

type CollisionChannel int

const (
	ChannelWorldStatic CollisionChannel = iota
	ChannelWorldDynamic
	ChannelPawn
	ChannelVisibility
	ChannelCamera
	ChannelProjectile
	channelCount
)

func (c CollisionChannel) String() string {
	switch c {
	case ChannelWorldStatic:
		return "WorldStatic"
	case ChannelWorldDynamic:
		return "WorldDynamic"
	case ChannelPawn:
		return "Pawn"
	case ChannelVisibility:
		return "Visibility"
	case ChannelCamera:
		return "Camera"
	case ChannelProjectile:
		return "Projectile"
	}
	return "Unknown"
}

type CollisionResponse int

const (
	ResponseIgnore CollisionResponse = iota
	ResponseOverlap
	ResponseBlock
)

// Responses holds a body's response per channel.
type Responses [channelCount]CollisionResponse

func BlockAll() Responses {
	var r Responses
	for i := range r {
		r[i] = ResponseBlock
	}
	return r
}

func OverlapAll() Responses {
	var r Responses
	for i := range r {
		r[i] = ResponseOverlap
	}
	return r
}

// With returns a copy with one channel changed.
func (r Responses) With(channel CollisionChannel, response CollisionResponse) Responses {
	r[channel] = response
	return r
}

func (r Responses) For(channel CollisionChannel) CollisionResponse {
	if channel < 0 || channel >= channelCount {
		return ResponseIgnore
	}
	return r[channel]
}
