package portfolio

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// The portfolio is a singleton: one fixed document ID, so the storage
// key itself enforces uniqueness and every read-modify-write below runs
// in a transaction against that single key.
const (
	portfolioCollection = "portfolio"
	portfolioDocID      = "profile"
)

// firestorePortfolio maps to the Firestore document structure.
type firestorePortfolio struct {
	Name         string            `firestore:"name"`
	Title        string            `firestore:"title"`
	Bio          string            `firestore:"bio"`
	Email        string            `firestore:"email"`
	Phone        string            `firestore:"phone"`
	Location     string            `firestore:"location"`
	ProfileImage string            `firestore:"profile_image"`
	Skills       []Skill           `firestore:"skills"`
	Experience   []Experience      `firestore:"experience"`
	Education    []Education       `firestore:"education"`
	SocialLinks  map[string]string `firestore:"social_links"`
	UpdatedAt    time.Time         `firestore:"updated_at"`
}

// FirestoreStore implements Service on Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) docRef() *firestore.DocumentRef {
	return s.client.Collection(portfolioCollection).Doc(portfolioDocID)
}

// GetOrCreate returns the portfolio, creating the default document
// inside a transaction when none exists. The check-and-create is atomic
// so concurrent first fetches observe exactly one document.
func (s *FirestoreStore) GetOrCreate(ctx context.Context) (*Portfolio, error) {
	docRef := s.docRef()
	var result *Portfolio

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err == nil {
			var fp firestorePortfolio
			if err := doc.DataTo(&fp); err != nil {
				return err
			}
			result = fp.toPortfolio()
			return nil
		}
		if status.Code(err) != codes.NotFound {
			return err
		}

		def := DefaultPortfolio()
		if err := tx.Set(docRef, toFirestorePortfolio(def)); err != nil {
			return err
		}
		result = def
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Update merges params over the stored document, creating it from
// params when absent.
func (s *FirestoreStore) Update(ctx context.Context, params UpdateParams) (*Portfolio, error) {
	docRef := s.docRef()
	var result *Portfolio

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		p := &Portfolio{}
		doc, err := tx.Get(docRef)
		if err == nil {
			var fp firestorePortfolio
			if err := doc.DataTo(&fp); err != nil {
				return err
			}
			p = fp.toPortfolio()
		} else if status.Code(err) != codes.NotFound {
			return err
		}

		merge(p, params)
		if err := tx.Set(docRef, toFirestorePortfolio(p)); err != nil {
			return err
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AddSkill appends to the skill list of an existing portfolio.
func (s *FirestoreStore) AddSkill(ctx context.Context, skill Skill) ([]Skill, error) {
	var skills []Skill
	err := s.appendList(ctx, func(fp *firestorePortfolio) {
		fp.Skills = append(fp.Skills, skill)
		skills = fp.Skills
	})
	if err != nil {
		return nil, err
	}
	return skills, nil
}

// AddExperience appends to the experience list of an existing portfolio.
func (s *FirestoreStore) AddExperience(ctx context.Context, exp Experience) ([]Experience, error) {
	var entries []Experience
	err := s.appendList(ctx, func(fp *firestorePortfolio) {
		fp.Experience = append(fp.Experience, exp)
		entries = fp.Experience
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// AddEducation appends to the education list of an existing portfolio.
func (s *FirestoreStore) AddEducation(ctx context.Context, edu Education) ([]Education, error) {
	var entries []Education
	err := s.appendList(ctx, func(fp *firestorePortfolio) {
		fp.Education = append(fp.Education, edu)
		entries = fp.Education
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// appendList runs a transactional read-append-write on the singleton.
// Unlike GetOrCreate, a missing document is an error here.
func (s *FirestoreStore) appendList(ctx context.Context, mutate func(*firestorePortfolio)) error {
	docRef := s.docRef()

	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fp firestorePortfolio
		if err := doc.DataTo(&fp); err != nil {
			return err
		}
		mutate(&fp)
		fp.UpdatedAt = time.Now().UTC()
		return tx.Set(docRef, fp)
	})
}

func toFirestorePortfolio(p *Portfolio) firestorePortfolio {
	return firestorePortfolio{
		Name:         p.Name,
		Title:        p.Title,
		Bio:          p.Bio,
		Email:        p.Email,
		Phone:        p.Phone,
		Location:     p.Location,
		ProfileImage: p.ProfileImage,
		Skills:       p.Skills,
		Experience:   p.Experience,
		Education:    p.Education,
		SocialLinks:  p.SocialLinks,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (fp *firestorePortfolio) toPortfolio() *Portfolio {
	return &Portfolio{
		Name:         fp.Name,
		Title:        fp.Title,
		Bio:          fp.Bio,
		Email:        fp.Email,
		Phone:        fp.Phone,
		Location:     fp.Location,
		ProfileImage: fp.ProfileImage,
		Skills:       fp.Skills,
		Experience:   fp.Experience,
		Education:    fp.Education,
		SocialLinks:  fp.SocialLinks,
		UpdatedAt:    fp.UpdatedAt,
	}
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
