package releaseutils_test

import (
	"context"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/rotisserie/eris"
	"github.com/spf13/afero"

	"github.com/ems-solar/release-tools/manifestutils"
	"github.com/ems-solar/release-tools/releaseutils"
	"github.com/ems-solar/release-tools/versionutils"
)

var _ = Describe("VersionBumper", func() {

	const manifestPath = "custom_components/ems_balcony_solar/manifest.json"

	var (
		ctx    = context.Background()
		fs     afero.Fs
		bumper *releaseutils.VersionBumper
	)

	writeManifest := func(content string) {
		Expect(afero.WriteFile(fs, manifestPath, []byte(content), 0644)).To(Succeed())
	}

	readManifest := func() string {
		data, err := afero.ReadFile(fs, manifestPath)
		Expect(err).NotTo(HaveOccurred())
		return string(data)
	}

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
		bumper = releaseutils.NewVersionBumper(fs)
	})

	It("bumps the patch component and persists it", func() {
		writeManifest(`{"domain": "ems_balcony_solar", "version": "1.2.3"}`)

		newVersion, err := bumper.Bump(ctx, manifestPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(newVersion).To(Equal(versionutils.NewVersion(1, 2, 4)))

		manifest, err := manifestutils.NewManifestFile(fs, manifestPath).Read()
		Expect(err).NotTo(HaveOccurred())
		Expect(manifest.Version()).To(Equal(versionutils.NewVersion(1, 2, 4)))
		domain, found := manifest.Field("domain")
		Expect(found).To(BeTrue())
		Expect(string(domain)).To(Equal(`"ems_balcony_solar"`))
	})

	It("bumps twice when run twice", func() {
		writeManifest(`{"version": "1.2.3"}`)

		first, err := bumper.Bump(ctx, manifestPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(first.String()).To(Equal("1.2.4"))

		second, err := bumper.Bump(ctx, manifestPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(second.String()).To(Equal("1.2.5"))
	})

	It("fails with MalformedVersion and leaves the manifest untouched", func() {
		for _, content := range []string{
			`{"version": ""}`,
			`{"version": "1.2"}`,
			`{"version": "a.b.c"}`,
			`{"domain": "ems_balcony_solar"}`,
		} {
			writeManifest(content)

			newVersion, err := bumper.Bump(ctx, manifestPath)
			Expect(newVersion).To(BeNil())
			Expect(eris.Is(err, versionutils.MalformedVersion)).To(BeTrue())
			Expect(readManifest()).To(Equal(content))
		}
	})

	It("derives the commit message from the bump result", func() {
		Expect(releaseutils.BumpCommitMessage(versionutils.NewVersion(1, 2, 4))).
			To(Equal("Bump version to 1.2.4"))
	})
})
