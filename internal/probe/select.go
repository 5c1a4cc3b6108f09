package probe

// BestVideo returns the video stream a player would pick by default: the
// default-disposition stream, else the first one. Cover art (attached
// pictures) never qualifies. Nil when the file has no playable video.
func (r *Result) BestVideo() *VideoStream {
	var first *VideoStream
	for i := range r.Video {
		v := &r.Video[i]
		if v.IsAttachedPic {
			continue
		}
		if v.IsDefault {
			return v
		}
		if first == nil {
			first = v
		}
	}
	return first
}

// BestAudio returns the default-disposition audio stream, else the first.
// Nil when the file has no audio.
func (r *Result) BestAudio() *AudioStream {
	for i := range r.Audio {
		if r.Audio[i].IsDefault {
			return &r.Audio[i]
		}
	}
	if len(r.Audio) > 0 {
		return &r.Audio[0]
	}
	return nil
}
